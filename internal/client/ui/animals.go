package ui

import (
	"context"
	"strconv"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/list"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/datex"
)

func animalFields() []Field {
	return []Field{
		{Key: "name", Label: "Nome", Kind: TextField, Required: true},
		{Key: "sex", Label: "Sexo", Kind: SelectField, Options: models.SexOptions(), Required: true},
		{Key: "species", Label: "Espécie", Kind: SelectField, Options: models.SpeciesOptions(), Required: true},
		{Key: "breed", Label: "Raça", Kind: SelectField, Options: models.BreedOptions(), Required: true},
		{Key: "size", Label: "Porte", Kind: SelectField, Options: models.SizeOptions(), Required: true},
		{Key: "color", Label: "Cor", Kind: SelectField, Options: models.ColorOptions(), Required: true},
		{Key: "birthDate", Label: "Nascimento", Kind: DateField,
			Validate: func(v string, _ map[string]string) string {
				if v != "" && !datex.IsValidBirthDate(v) {
					return "Data de nascimento não pode ser futura"
				}
				return ""
			}},
		{Key: "microchip", Label: "Microchip", Kind: TextField},
		{Key: "rga", Label: "RGA", Kind: TextField},
		{Key: "castrated", Label: "Castrado", Kind: CheckField},
		{Key: "fiv", Label: "FIV", Kind: SelectField, Options: models.FivFelvOptions(), Required: true},
		{Key: "felv", Label: "FeLV", Kind: SelectField, Options: models.FivFelvOptions(), Required: true},
		{Key: "notes", Label: "Observações", Kind: TextField},
	}
}

func prefillAnimal(f *Form, a models.Animal) {
	f.SetValue("name", a.Name)
	f.SetValue("sex", string(a.Sex))
	f.SetValue("species", string(a.Species))
	f.SetValue("breed", string(a.Breed))
	f.SetValue("size", string(a.Size))
	f.SetValue("color", string(a.Color))
	if br, ok := datex.ISODateToBrazilian(a.BirthDate); ok {
		f.SetValue("birthDate", br)
	}
	f.SetValue("microchip", a.Microchip)
	f.SetValue("rga", a.RGA)
	f.SetValue("castrated", strconv.FormatBool(a.Castrated))
	f.SetValue("fiv", string(a.Fiv))
	f.SetValue("felv", string(a.Felv))
	f.SetValue("notes", a.Notes)
	f.SetValue("status", string(a.Status))
}

// animalRequest converts drawer values to the wire payload. The birth
// date leaves the Brazilian display format only here.
func animalRequest(values map[string]string) api.CreateAnimalRequest {
	req := api.CreateAnimalRequest{
		Name:      values["name"],
		Sex:       models.AnimalSex(values["sex"]),
		Species:   models.AnimalSpecies(values["species"]),
		Breed:     models.AnimalBreed(values["breed"]),
		Size:      models.AnimalSize(values["size"]),
		Color:     models.AnimalColor(values["color"]),
		Microchip: values["microchip"],
		RGA:       values["rga"],
		Castrated: values["castrated"] == "true",
		Fiv:       models.AnimalFivFelv(values["fiv"]),
		Felv:      models.AnimalFivFelv(values["felv"]),
		Notes:     values["notes"],
	}
	if iso, ok := datex.BrazilianDateToISO(values["birthDate"]); ok {
		req.BirthDate = iso
	}
	return req
}

// NewAnimalsPage builds the animals listing.
func NewAnimalsPage(deps *Deps) pager {
	client := deps.API

	cfg := PageConfig[models.Animal]{
		Scope:    "animals",
		Title:    "Animais",
		Singular: "animal",
		Columns: []Column[models.Animal]{
			{Title: "Nome", Width: 20, SortKey: "name", Cell: func(a models.Animal) string { return a.Name }},
			{Title: "Espécie", Width: 12, SortKey: "species", Cell: func(a models.Animal) string { return a.Species.Label() }},
			{Title: "Sexo", Width: 8, Cell: func(a models.Animal) string { return a.Sex.Label() }},
			{Title: "Situação", Width: 12, SortKey: "status", Cell: func(a models.Animal) string { return a.Status.Label() }},
			{Title: "Cadastro", Width: 12, SortKey: "createdAt", Cell: func(a models.Animal) string { return datex.FormatDate(a.CreatedAt) }},
		},
		Sort: list.SortConfig{
			Fields: map[string]string{
				"name": "name", "species": "species",
				"status": "status", "createdAt": "createdAt",
			},
			Default: "createdAt:DESC",
		},
		ID: func(a models.Animal) string { return a.UUID },
		Fetch: func(ctx context.Context, params api.ListParams) (*api.Pagination[models.Animal], error) {
			return client.ListAnimals(ctx, params)
		},
		NewForm: func() *Form {
			return NewForm("Novo animal", animalFields())
		},
		EditForm: func(a models.Animal) *Form {
			fields := append(animalFields(), Field{
				Key: "status", Label: "Situação", Kind: SelectField,
				Options: models.StatusOptions(), Required: true,
			})
			f := NewForm("Editar animal", fields)
			prefillAnimal(f, a)
			return f
		},
		Submit: func(ctx context.Context, target string, values map[string]string) error {
			if target == "" {
				return client.CreateAnimal(ctx, animalRequest(values))
			}
			return client.UpdateAnimal(ctx, target, api.UpdateAnimalRequest{
				CreateAnimalRequest: animalRequest(values),
				Status:              models.AnimalStatus(values["status"]),
			})
		},
		Delete: func(ctx context.Context, a models.Animal) error {
			return client.DeleteAnimal(ctx, a.UUID)
		},
		ConflictText: "Não é possível excluir: o animal possui anexos ou aplicações vinculados",
		Navigate: map[string]func(models.Animal) pager{
			"t": func(a models.Animal) pager { return NewAttachmentsPage(deps, a) },
			"p": func(a models.Animal) pager { return NewApplicationsPage(deps, a) },
		},
		EmptyText:      "Nenhum animal cadastrado ainda",
		NoMatchText:    "Nenhum animal encontrado para a busca",
		SearchDebounce: deps.Cfg.SearchDebounce,
	}
	return NewListPage(cfg, deps.Styles)
}
