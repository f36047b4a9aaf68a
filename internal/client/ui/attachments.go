package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/victorozoterio/friendly-snout-console/internal/client/api"
	"github.com/victorozoterio/friendly-snout-console/internal/client/list"
	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
	"github.com/victorozoterio/friendly-snout-console/internal/datex"
)

// NewAttachmentsPage builds the attachments listing scoped to one
// animal. The create drawer takes a local file path and uploads it.
func NewAttachmentsPage(deps *Deps, animal models.Animal) pager {
	client := deps.API

	cfg := PageConfig[models.Attachment]{
		Scope:    "attachments:" + animal.UUID,
		Title:    "Anexos de " + animal.Name,
		Singular: "anexo",
		Columns: []Column[models.Attachment]{
			{Title: "Nome", Width: 30, SortKey: "name", Cell: func(a models.Attachment) string { return a.Name }},
			{Title: "Tipo", Width: 12, Cell: func(a models.Attachment) string { return a.Type }},
			{Title: "Enviado em", Width: 12, SortKey: "createdAt", Cell: func(a models.Attachment) string { return datex.FormatDate(a.CreatedAt) }},
		},
		Sort: list.SortConfig{
			Fields:  map[string]string{"name": "name", "createdAt": "createdAt"},
			Default: "createdAt:DESC",
		},
		ID: func(a models.Attachment) string { return a.UUID },
		Fetch: func(ctx context.Context, params api.ListParams) (*api.Pagination[models.Attachment], error) {
			return client.ListAttachmentsByAnimal(ctx, animal.UUID, params)
		},
		NewForm: func() *Form {
			return NewForm("Enviar anexo", []Field{
				{Key: "path", Label: "Arquivo", Kind: TextField, Required: true,
					Validate: func(v string, _ map[string]string) string {
						if v == "" {
							return ""
						}
						if _, err := os.Stat(v); err != nil {
							return "Arquivo não encontrado"
						}
						return ""
					}},
			})
		},
		Submit: func(ctx context.Context, _ string, values map[string]string) error {
			path := values["path"]
			file, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open attachment: %w", err)
			}
			defer file.Close()
			return client.CreateAttachment(ctx, animal.UUID, filepath.Base(path), file)
		},
		Delete: func(ctx context.Context, a models.Attachment) error {
			return client.DeleteAttachment(ctx, a.UUID)
		},
		EmptyText:      "Nenhum anexo para este animal",
		NoMatchText:    "Nenhum anexo encontrado para a busca",
		SearchDebounce: deps.Cfg.SearchDebounce,
	}
	return NewListPage(cfg, deps.Styles)
}
