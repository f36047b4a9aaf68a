package api

import (
	"context"
	"net/http"

	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
)

// CreateMedicineApplicationRequest records a dose given to an animal.
// AppliedAt, NextApplicationAt and EndsAt are ISO-8601 UTC instants; the
// caller converts from Brazilian local time at submit. Frequency,
// NextApplicationAt and EndsAt are present only for recurring schedules.
type CreateMedicineApplicationRequest struct {
	MedicineUUID      string                      `json:"medicineUuid"`
	Quantity          int                         `json:"quantity"`
	AppliedAt         string                      `json:"appliedAt"`
	NextApplicationAt string                      `json:"nextApplicationAt,omitempty"`
	Frequency         models.ApplicationFrequency `json:"frequency,omitempty"`
	EndsAt            string                      `json:"endsAt,omitempty"`
}

// CreateMedicineApplication records an application under an animal.
// Stock decrement and schedule expansion happen server-side.
func (c *Client) CreateMedicineApplication(ctx context.Context, animalUUID string, req CreateMedicineApplicationRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/medicine-applications/animal/"+animalUUID, req, nil)
}

// ListMedicineApplicationsByAnimal fetches one page of an animal's
// application history.
func (c *Client) ListMedicineApplicationsByAnimal(ctx context.Context, animalUUID string, params ListParams) (*Pagination[models.MedicineApplication], error) {
	var page Pagination[models.MedicineApplication]
	if err := c.getJSON(ctx, "/medicine-applications/by-animal/"+animalUUID, params.Query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DeleteMedicineApplication removes an application record.
func (c *Client) DeleteMedicineApplication(ctx context.Context, uuid string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/medicine-applications/"+uuid, nil, nil)
}
