package api

import (
	"context"
	"net/http"

	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
)

// CreateMedicineRequest is the payload for registering a medicine.
type CreateMedicineRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Quantity          int    `json:"quantity"`
	MedicineBrandUUID string `json:"medicineBrandUuid"`
}

// UpdateMedicineRequest patches a medicine. Quantity is always sent;
// the remaining fields are omitted when unchanged.
type UpdateMedicineRequest struct {
	Name              string `json:"name,omitempty"`
	Description       string `json:"description,omitempty"`
	Quantity          int    `json:"quantity"`
	MedicineBrandUUID string `json:"medicineBrandUuid,omitempty"`
}

// ListMedicines fetches one page of medicines.
func (c *Client) ListMedicines(ctx context.Context, params ListParams) (*Pagination[models.Medicine], error) {
	var page Pagination[models.Medicine]
	if err := c.getJSON(ctx, "/medicines", params.Query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetMedicine fetches a single medicine by uuid.
func (c *Client) GetMedicine(ctx context.Context, uuid string) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := c.getJSON(ctx, "/medicines/"+uuid, nil, &medicine); err != nil {
		return nil, err
	}
	return &medicine, nil
}

// CreateMedicine registers a new medicine.
func (c *Client) CreateMedicine(ctx context.Context, req CreateMedicineRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/medicines", req, nil)
}

// UpdateMedicine patches an existing medicine.
func (c *Client) UpdateMedicine(ctx context.Context, uuid string, req UpdateMedicineRequest) error {
	return c.sendJSON(ctx, http.MethodPatch, "/medicines/"+uuid, req, nil)
}

// ActivateMedicine makes a medicine selectable for applications again.
func (c *Client) ActivateMedicine(ctx context.Context, uuid string) error {
	return c.sendJSON(ctx, http.MethodPatch, "/medicines/"+uuid+"/activate", nil, nil)
}

// DeactivateMedicine hides a medicine from new applications.
func (c *Client) DeactivateMedicine(ctx context.Context, uuid string) error {
	return c.sendJSON(ctx, http.MethodPatch, "/medicines/"+uuid+"/deactivate", nil, nil)
}

// DeleteMedicine removes a medicine. The backend answers 409 when the
// medicine has applications on record.
func (c *Client) DeleteMedicine(ctx context.Context, uuid string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/medicines/"+uuid, nil, nil)
}
