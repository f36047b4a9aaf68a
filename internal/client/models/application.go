package models

import (
	"encoding/json"
	"time"
)

type ApplicationFrequency string

const (
	FrequencyDoesNotRepeat ApplicationFrequency = "não se repete"
	FrequencyEveryWeekday  ApplicationFrequency = "todos os dias da semana"
	FrequencyDaily         ApplicationFrequency = "diário"
	FrequencyWeekly        ApplicationFrequency = "semanal"
	FrequencyMonthly       ApplicationFrequency = "mensal"
	FrequencyYearly        ApplicationFrequency = "anual"
)

func (f ApplicationFrequency) Label() string {
	switch f {
	case FrequencyDoesNotRepeat:
		return "Não se repete"
	case FrequencyEveryWeekday:
		return "Todos os dias da semana"
	case FrequencyDaily:
		return "Diário"
	case FrequencyWeekly:
		return "Semanal"
	case FrequencyMonthly:
		return "Mensal"
	case FrequencyYearly:
		return "Anual"
	default:
		return string(f)
	}
}

func FrequencyOptions() []Option {
	frequencies := []ApplicationFrequency{
		FrequencyDoesNotRepeat, FrequencyEveryWeekday, FrequencyDaily,
		FrequencyWeekly, FrequencyMonthly, FrequencyYearly,
	}
	options := make([]Option, 0, len(frequencies))
	for _, f := range frequencies {
		options = append(options, Option{Value: string(f), Label: f.Label()})
	}
	return options
}

// AppliedMedicine is the medicine snapshot nested in an application.
type AppliedMedicine struct {
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MedicineApplication is one dose given (or scheduled) for an animal.
// NextApplicationAt/EndsAt are set only for recurring schedules.
type MedicineApplication struct {
	UUID                  string               `json:"uuid"`
	Medicine              AppliedMedicine      `json:"medicine"`
	Quantity              int                  `json:"quantity"`
	AppliedAt             time.Time            `json:"appliedAt"`
	NextApplicationAt     *time.Time           `json:"nextApplicationAt,omitempty"`
	Frequency             ApplicationFrequency `json:"frequency,omitempty"`
	EndsAt                *time.Time           `json:"endsAt,omitempty"`
	GoogleCalendarEventID string               `json:"googleCalendarEventId,omitempty"`
	CreatedAt             time.Time            `json:"createdAt"`
}

// UnmarshalJSON pins the nested medicine object as the canonical shape.
// Older backend versions returned a flat medicineName instead; that form
// is accepted here, at decode time, and normalized into Medicine.Name so
// nothing downstream has to probe for it.
func (a *MedicineApplication) UnmarshalJSON(data []byte) error {
	type alias MedicineApplication
	aux := struct {
		*alias
		LegacyMedicineName string `json:"medicineName"`
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if a.Medicine.Name == "" && aux.LegacyMedicineName != "" {
		a.Medicine.Name = aux.LegacyMedicineName
	}
	return nil
}

// MedicineName returns the display name of the applied medicine, with a
// placeholder for records that predate the name being stored.
func (a MedicineApplication) MedicineName() string {
	if a.Medicine.Name == "" {
		return "-"
	}
	return a.Medicine.Name
}
