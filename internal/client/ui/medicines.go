package ui

import (
	"context"
	"strconv"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/list"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/datex"
)

func medicineFields() []Field {
	return []Field{
		{Key: "name", Label: "Nome", Kind: TextField, Required: true},
		{Key: "description", Label: "Descrição", Kind: TextField},
		{Key: "quantity", Label: "Quantidade", Kind: NumberField, Required: true},
		{Key: "brand", Label: "Marca", Kind: SelectField, OptionsKey: "brand", Required: true},
	}
}

// NewMedicinesPage builds the medicines listing. Brand options for the
// drawer are loaded from the brands endpoint once per page.
func NewMedicinesPage(deps *Deps) pager {
	client := deps.API

	cfg := PageConfig[models.Medicine]{
		Scope:    "medicines",
		Title:    "Medicamentos",
		Singular: "medicamento",
		Columns: []Column[models.Medicine]{
			{Title: "Nome", Width: 22, SortKey: "name", Cell: func(m models.Medicine) string { return m.Name }},
			{Title: "Marca", Width: 16, SortKey: "brand", Cell: func(m models.Medicine) string { return m.Brand.Name }},
			{Title: "Estoque", Width: 8, Cell: func(m models.Medicine) string { return strconv.Itoa(m.Quantity) }},
			{Title: "Status", Width: 8, Cell: func(m models.Medicine) string { return m.ActiveLabel() }},
			{Title: "Cadastro", Width: 12, SortKey: "createdAt", Cell: func(m models.Medicine) string { return datex.FormatDate(m.CreatedAt) }},
		},
		Sort: list.SortConfig{
			Fields: map[string]string{
				"name": "name", "brand": "medicineBrand.name", "createdAt": "createdAt",
			},
			Default: "createdAt:DESC",
		},
		ID: func(m models.Medicine) string { return m.UUID },
		Fetch: func(ctx context.Context, params api.ListParams) (*api.Pagination[models.Medicine], error) {
			return client.ListMedicines(ctx, params)
		},
		LoadOptions: func(ctx context.Context) (map[string][]models.Option, error) {
			page, err := client.ListMedicineBrands(ctx, api.ListParams{Limit: 100, SortBy: "name:ASC"})
			if err != nil {
				return nil, err
			}
			options := make([]models.Option, 0, len(page.Data))
			for _, brand := range page.Data {
				options = append(options, models.Option{Value: brand.UUID, Label: brand.Name})
			}
			return map[string][]models.Option{"brand": options}, nil
		},
		NewForm: func() *Form {
			return NewForm("Novo medicamento", medicineFields())
		},
		EditForm: func(m models.Medicine) *Form {
			f := NewForm("Editar medicamento", medicineFields())
			f.SetValue("name", m.Name)
			f.SetValue("description", m.Description)
			f.SetValue("quantity", fmtInt(m.Quantity))
			f.SetValue("brand", m.Brand.UUID)
			return f
		},
		Submit: func(ctx context.Context, target string, values map[string]string) error {
			quantity, _ := strconv.Atoi(values["quantity"])
			if target == "" {
				return client.CreateMedicine(ctx, api.CreateMedicineRequest{
					Name:              values["name"],
					Description:       values["description"],
					Quantity:          quantity,
					MedicineBrandUUID: values["brand"],
				})
			}
			return client.UpdateMedicine(ctx, target, api.UpdateMedicineRequest{
				Name:              values["name"],
				Description:       values["description"],
				Quantity:          quantity,
				MedicineBrandUUID: values["brand"],
			})
		},
		Delete: func(ctx context.Context, m models.Medicine) error {
			return client.DeleteMedicine(ctx, m.UUID)
		},
		ConflictText: "Não é possível excluir: o medicamento possui aplicações registradas",
		RowActions: map[string]RowAction[models.Medicine]{
			"x": {
				Verb: "alterar status de",
				Run: func(ctx context.Context, m models.Medicine) error {
					if m.IsActive {
						return client.DeactivateMedicine(ctx, m.UUID)
					}
					return client.ActivateMedicine(ctx, m.UUID)
				},
			},
		},
		EmptyText:      "Nenhum medicamento cadastrado ainda",
		NoMatchText:    "Nenhum medicamento encontrado para a busca",
		SearchDebounce: deps.Cfg.SearchDebounce,
	}
	return NewListPage(cfg, deps.Styles)
}
