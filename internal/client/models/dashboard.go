package models

// StageCount splits a shelter stage's population by species.
type StageCount struct {
	Dogs  int `json:"dogs"`
	Cats  int `json:"cats"`
	Total int `json:"total"`
}

// StageTotals is the dashboard summary: animal counts per shelter stage.
type StageTotals struct {
	Quarantine StageCount `json:"quarantine"`
	Sheltered  StageCount `json:"sheltered"`
	Adopted    StageCount `json:"adopted"`
}
