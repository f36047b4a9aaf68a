package api

import (
	"context"
	"net/http"

	"github.com/victorozoterio/friendly-snout-console/internal/client/models"
)

// CreateAnimalRequest is the payload for registering an animal.
// BirthDate is an ISO date (YYYY-MM-DD); the caller converts from the
// Brazilian display format at submit time.
type CreateAnimalRequest struct {
	Name      string               `json:"name"`
	Sex       models.AnimalSex     `json:"sex"`
	Species   models.AnimalSpecies `json:"species"`
	Breed     models.AnimalBreed   `json:"breed"`
	Size      models.AnimalSize    `json:"size"`
	Color     models.AnimalColor   `json:"color"`
	BirthDate string               `json:"birthDate,omitempty"`
	Microchip string               `json:"microchip,omitempty"`
	RGA       string               `json:"rga,omitempty"`
	Castrated bool                 `json:"castrated"`
	Fiv       models.AnimalFivFelv `json:"fiv"`
	Felv      models.AnimalFivFelv `json:"felv"`
	Notes     string               `json:"notes,omitempty"`
}

// UpdateAnimalRequest extends the create payload with the shelter stage.
type UpdateAnimalRequest struct {
	CreateAnimalRequest
	Status models.AnimalStatus `json:"status"`
}

// ListAnimals fetches one page of animals.
func (c *Client) ListAnimals(ctx context.Context, params ListParams) (*Pagination[models.Animal], error) {
	var page Pagination[models.Animal]
	if err := c.getJSON(ctx, "/animals", params.Query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAnimal fetches a single animal by uuid.
func (c *Client) GetAnimal(ctx context.Context, uuid string) (*models.Animal, error) {
	var animal models.Animal
	if err := c.getJSON(ctx, "/animals/"+uuid, nil, &animal); err != nil {
		return nil, err
	}
	return &animal, nil
}

// CreateAnimal registers a new animal.
func (c *Client) CreateAnimal(ctx context.Context, req CreateAnimalRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/animals", req, nil)
}

// UpdateAnimal patches an existing animal.
func (c *Client) UpdateAnimal(ctx context.Context, uuid string, req UpdateAnimalRequest) error {
	return c.sendJSON(ctx, http.MethodPatch, "/animals/"+uuid, req, nil)
}

// DeleteAnimal removes an animal and, server-side, its dependents.
func (c *Client) DeleteAnimal(ctx context.Context, uuid string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/animals/"+uuid, nil, nil)
}

// TotalPerStage fetches the dashboard counts.
func (c *Client) TotalPerStage(ctx context.Context) (*models.StageTotals, error) {
	var totals models.StageTotals
	if err := c.getJSON(ctx, "/animals/total-per-stage", nil, &totals); err != nil {
		return nil, err
	}
	return &totals, nil
}
