package api

import (
	"context"
	"net/http"

	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
)

// CreateMedicineBrandRequest is the payload for registering a brand.
type CreateMedicineBrandRequest struct {
	Name string `json:"name"`
}

// UpdateMedicineBrandRequest replaces a brand (the backend uses PUT here,
// unlike the PATCH everywhere else).
type UpdateMedicineBrandRequest struct {
	Name string `json:"name,omitempty"`
}

// ListMedicineBrands fetches one page of brands.
func (c *Client) ListMedicineBrands(ctx context.Context, params ListParams) (*Pagination[models.MedicineBrand], error) {
	var page Pagination[models.MedicineBrand]
	if err := c.getJSON(ctx, "/medicine-brands", params.Query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMedicineBrand fetches a single brand by uuid.
func (c *Client) GetMedicineBrand(ctx context.Context, uuid string) (*models.MedicineBrand, error) {
	var brand models.MedicineBrand
	if err := c.getJSON(ctx, "/medicine-brands/"+uuid, nil, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// CreateMedicineBrand registers a new brand.
func (c *Client) CreateMedicineBrand(ctx context.Context, req CreateMedicineBrandRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/medicine-brands", req, nil)
}

// UpdateMedicineBrand replaces an existing brand.
func (c *Client) UpdateMedicineBrand(ctx context.Context, uuid string, req UpdateMedicineBrandRequest) error {
	return c.sendJSON(ctx, http.MethodPut, "/medicine-brands/"+uuid, req, nil)
}

// DeleteMedicineBrand removes a brand. The backend answers 409 when the
// brand still has active medicines.
func (c *Client) DeleteMedicineBrand(ctx context.Context, uuid string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/medicine-brands/"+uuid, nil, nil)
}
