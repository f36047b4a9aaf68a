package models

import "time"

// MedicineBrand is the backend's brand record.
type MedicineBrand struct {
	UUID      string    `json:"uuid"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Medicine is the backend's medicine record with its nested brand.
// Quantity is current stock; the backend decrements it on application.
type Medicine struct {
	UUID        string        `json:"uuid"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Quantity    int           `json:"quantity"`
	IsActive    bool          `json:"isActive"`
	Brand       MedicineBrand `json:"medicineBrand"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ActiveLabel renders the activation flag for table cells.
func (m Medicine) ActiveLabel() string {
	if m.IsActive {
		return "Ativo"
	}
	return "Inativo"
}
