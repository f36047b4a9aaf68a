package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumLabels(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"Sex", SexFemale.Label(), "Fêmea"},
		{"Species", SpeciesCat.Label(), "Gato"},
		{"Size", SizeMedium.Label(), "Médio"},
		{"Color", ColorTan.Label(), "Caramelo"},
		{"FivFelv", FivFelvNotTested.Label(), "Não testado"},
		{"Status", StatusQuarantine.Label(), "Quarentena"},
		{"Frequency", FrequencyDoesNotRepeat.Label(), "Não se repete"},
		{"Unknown value passes through", AnimalSex("desconhecido").Label(), "desconhecido"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.got)
		})
	}
}

func TestFindOption(t *testing.T) {
	options := SexOptions()

	found := FindOption(options, string(SexMale))
	require.NotNil(t, found)
	require.Equal(t, "Macho", found.Label)

	require.Nil(t, FindOption(options, ""))
	require.Nil(t, FindOption(options, "gato"))
}

func TestOptionVocabularies(t *testing.T) {
	require.Len(t, BreedOptions(), 17)
	require.Len(t, ColorOptions(), 8)
	require.Len(t, FrequencyOptions(), 6)
	require.Len(t, StatusOptions(), 4)
}

func TestApplicationDecodeCanonicalShape(t *testing.T) {
	payload := `{
		"uuid": "app-1",
		"medicine": {"uuid": "med-1", "name": "Vermífugo", "quantity": 5, "isActive": true},
		"quantity": 1,
		"appliedAt": "2024-06-15T13:00:00.000Z",
		"frequency": "semanal",
		"createdAt": "2024-06-15T13:00:00.000Z"
	}`

	var app MedicineApplication
	require.NoError(t, json.Unmarshal([]byte(payload), &app))
	require.Equal(t, "Vermífugo", app.MedicineName())
	require.Equal(t, FrequencyWeekly, app.Frequency)
}

func TestApplicationDecodeLegacyFlatName(t *testing.T) {
	payload := `{
		"uuid": "app-2",
		"medicineName": "Antipulgas",
		"quantity": 2,
		"appliedAt": "2024-06-15T13:00:00.000Z",
		"createdAt": "2024-06-15T13:00:00.000Z"
	}`

	var app MedicineApplication
	require.NoError(t, json.Unmarshal([]byte(payload), &app))
	require.Equal(t, "Antipulgas", app.MedicineName())
}

func TestApplicationDecodeMissingNameRendersPlaceholder(t *testing.T) {
	var app MedicineApplication
	require.NoError(t, json.Unmarshal([]byte(`{"uuid": "app-3", "quantity": 1}`), &app))
	require.Equal(t, "-", app.MedicineName())
}
