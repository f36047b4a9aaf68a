package ui

import (
	"context"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/list"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/datex"
)

// NewBrandsPage builds the medicine brands listing.
func NewBrandsPage(deps *Deps) pager {
	client := deps.API

	cfg := PageConfig[models.MedicineBrand]{
		Scope:    "medicine-brands",
		Title:    "Marcas de medicamentos",
		Singular: "marca",
		Columns: []Column[models.MedicineBrand]{
			{Title: "Nome", Width: 28, SortKey: "name", Cell: func(b models.MedicineBrand) string { return b.Name }},
			{Title: "Cadastro", Width: 12, SortKey: "createdAt", Cell: func(b models.MedicineBrand) string { return datex.FormatDate(b.CreatedAt) }},
		},
		Sort: list.SortConfig{
			Fields:  map[string]string{"name": "name", "createdAt": "createdAt"},
			Default: "createdAt:DESC",
		},
		ID: func(b models.MedicineBrand) string { return b.UUID },
		Fetch: func(ctx context.Context, params api.ListParams) (*api.Pagination[models.MedicineBrand], error) {
			return client.ListMedicineBrands(ctx, params)
		},
		NewForm: func() *Form {
			return NewForm("Nova marca", []Field{
				{Key: "name", Label: "Nome", Kind: TextField, Required: true},
			})
		},
		EditForm: func(b models.MedicineBrand) *Form {
			f := NewForm("Editar marca", []Field{
				{Key: "name", Label: "Nome", Kind: TextField, Required: true},
			})
			f.SetValue("name", b.Name)
			return f
		},
		Submit: func(ctx context.Context, target string, values map[string]string) error {
			if target == "" {
				return client.CreateMedicineBrand(ctx, api.CreateMedicineBrandRequest{Name: values["name"]})
			}
			return client.UpdateMedicineBrand(ctx, target, api.UpdateMedicineBrandRequest{Name: values["name"]})
		},
		Delete: func(ctx context.Context, b models.MedicineBrand) error {
			return client.DeleteMedicineBrand(ctx, b.UUID)
		},
		ConflictText:   "Não é possível excluir: existem medicamentos desta marca",
		EmptyText:      "Nenhuma marca cadastrada ainda",
		NoMatchText:    "Nenhuma marca encontrada para a busca",
		SearchDebounce: deps.Cfg.SearchDebounce,
	}
	return NewListPage(cfg, deps.Styles)
}
