package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
)

// CreateAttachment uploads a file under an animal as multipart form data.
// The single form field is named "file", matching the backend's contract.
// The content is buffered so the authenticated transport can replay the
// upload after a token refresh.
func (c *Client) CreateAttachment(ctx context.Context, animalUUID, filename string, content io.Reader) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return fmt.Errorf("preparing upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing upload: %w", err)
	}

	path := "/attachments/animal/" + animalUUID
	return c.do(ctx, http.MethodPost, path, nil, body.Bytes(), writer.FormDataContentType(), nil)
}

// ListAttachmentsByAnimal fetches one page of an animal's attachments.
func (c *Client) ListAttachmentsByAnimal(ctx context.Context, animalUUID string, params ListParams) (*Pagination[models.Attachment], error) {
	var page Pagination[models.Attachment]
	if err := c.getJSON(ctx, "/attachments/by-animal/"+animalUUID, params.Query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DeleteAttachment removes an attachment.
func (c *Client) DeleteAttachment(ctx context.Context, uuid string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/attachments/"+uuid, nil, nil)
}
