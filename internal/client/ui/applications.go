package ui

import (
	"context"
	"strconv"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/list"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/datex"
)

func scheduleOff(values map[string]string) bool {
	return values["scheduleNext"] != "true"
}

func applicationFields() []Field {
	return []Field{
		{Key: "medicine", Label: "Medicamento", Kind: SelectField, OptionsKey: "medicine", Required: true},
		{Key: "quantity", Label: "Quantidade", Kind: NumberField, Required: true},
		{Key: "appliedAt", Label: "Aplicado em", Kind: DateTimeField, Required: true},
		{Key: "scheduleNext", Label: "Agendar próxima aplicação", Kind: CheckField},
		{Key: "frequency", Label: "Frequência", Kind: SelectField,
			Options: models.FrequencyOptions(), Required: true, Hidden: scheduleOff},
		{Key: "nextApplicationAt", Label: "Próxima aplicação", Kind: DateTimeField,
			Required: true, Hidden: scheduleOff},
		{Key: "endsAt", Label: "Termina em", Kind: DateTimeField, Required: true,
			// A schedule that does not repeat has no end date.
			Hidden: func(values map[string]string) bool {
				return scheduleOff(values) ||
					values["frequency"] == string(models.FrequencyDoesNotRepeat)
			},
			Validate: func(v string, values map[string]string) string {
				if v == "" {
					return ""
				}
				endsAt, okEnd := datex.BrazilianDateTimeToUTC(v)
				appliedAt, okApplied := datex.BrazilianDateTimeToUTC(values["appliedAt"])
				if okEnd && okApplied && endsAt < appliedAt {
					return "Término não pode ser anterior à aplicação"
				}
				return ""
			}},
	}
}

// applicationRequest converts drawer values to the wire payload. All
// date-times leave the Brazilian display format only here.
func applicationRequest(values map[string]string) api.CreateMedicineApplicationRequest {
	quantity, _ := strconv.Atoi(values["quantity"])
	req := api.CreateMedicineApplicationRequest{
		MedicineUUID: values["medicine"],
		Quantity:     quantity,
	}
	if utc, ok := datex.BrazilianDateTimeToUTC(values["appliedAt"]); ok {
		req.AppliedAt = utc
	}
	if values["scheduleNext"] == "true" {
		req.Frequency = models.ApplicationFrequency(values["frequency"])
		if utc, ok := datex.BrazilianDateTimeToUTC(values["nextApplicationAt"]); ok {
			req.NextApplicationAt = utc
		}
		if utc, ok := datex.BrazilianDateTimeToUTC(values["endsAt"]); ok {
			req.EndsAt = utc
		}
	}
	return req
}

// NewApplicationsPage builds the application history scoped to one
// animal. Applications are immutable: they are recorded and deleted,
// never edited.
func NewApplicationsPage(deps *Deps, animal models.Animal) pager {
	client := deps.API

	cfg := PageConfig[models.MedicineApplication]{
		Scope:    "medicine-applications:" + animal.UUID,
		Title:    "Aplicações de " + animal.Name,
		Singular: "aplicação",
		Columns: []Column[models.MedicineApplication]{
			{Title: "Medicamento", Width: 22, SortKey: "medicine", Cell: func(a models.MedicineApplication) string { return a.MedicineName() }},
			{Title: "Qtd", Width: 5, Cell: func(a models.MedicineApplication) string { return strconv.Itoa(a.Quantity) }},
			{Title: "Aplicado em", Width: 18, SortKey: "appliedAt", Cell: func(a models.MedicineApplication) string { return datex.FormatDateTime(a.AppliedAt) }},
			{Title: "Frequência", Width: 14, Cell: func(a models.MedicineApplication) string {
				if a.Frequency == "" {
					return "-"
				}
				return a.Frequency.Label()
			}},
			{Title: "Próxima", Width: 18, Cell: func(a models.MedicineApplication) string {
				if a.NextApplicationAt == nil {
					return "-"
				}
				return datex.FormatDateTime(*a.NextApplicationAt)
			}},
		},
		Sort: list.SortConfig{
			Fields:  map[string]string{"medicine": "medicine.name", "appliedAt": "appliedAt"},
			Default: "appliedAt:DESC",
		},
		ID: func(a models.MedicineApplication) string { return a.UUID },
		Fetch: func(ctx context.Context, params api.ListParams) (*api.Pagination[models.MedicineApplication], error) {
			return client.ListMedicineApplicationsByAnimal(ctx, animal.UUID, params)
		},
		LoadOptions: func(ctx context.Context) (map[string][]models.Option, error) {
			page, err := client.ListMedicines(ctx, api.ListParams{Limit: 100, SortBy: "name:ASC"})
			if err != nil {
				return nil, err
			}
			options := make([]models.Option, 0, len(page.Data))
			for _, medicine := range page.Data {
				if !medicine.IsActive {
					continue
				}
				options = append(options, models.Option{Value: medicine.UUID, Label: medicine.Name})
			}
			return map[string][]models.Option{"medicine": options}, nil
		},
		NewForm: func() *Form {
			return NewForm("Registrar aplicação", applicationFields())
		},
		Submit: func(ctx context.Context, _ string, values map[string]string) error {
			return client.CreateMedicineApplication(ctx, animal.UUID, applicationRequest(values))
		},
		Delete: func(ctx context.Context, a models.MedicineApplication) error {
			return client.DeleteMedicineApplication(ctx, a.UUID)
		},
		EmptyText:      "Nenhuma aplicação registrada para este animal",
		NoMatchText:    "Nenhuma aplicação encontrada para a busca",
		SearchDebounce: deps.Cfg.SearchDebounce,
	}
	return NewListPage(cfg, deps.Styles)
}
