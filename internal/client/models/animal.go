package models

import "time"

// Enum wire values are the backend's lowercase Portuguese tokens. They are
// distinct from the capitalized display labels returned by Label().

type AnimalSex string

const (
	SexMale   AnimalSex = "macho"
	SexFemale AnimalSex = "fêmea"
)

type AnimalSpecies string

const (
	SpeciesDog AnimalSpecies = "cachorro"
	SpeciesCat AnimalSpecies = "gato"
)

type AnimalBreed string

const (
	BreedMixed          AnimalBreed = "S.R.D."
	BreedShihTzu        AnimalBreed = "Shih Tzu"
	BreedYorkshire      AnimalBreed = "Yorkshire"
	BreedGermanSpitz    AnimalBreed = "Spitz Alemão"
	BreedFrenchBulldog  AnimalBreed = "Bulldog Francês"
	BreedPoodle         AnimalBreed = "Poodle"
	BreedLhasaApso      AnimalBreed = "Lhasa Apso"
	BreedGolden         AnimalBreed = "Golden"
	BreedRottweiler     AnimalBreed = "Rottweiler"
	BreedLabrador       AnimalBreed = "Labrador"
	BreedPug            AnimalBreed = "Pug"
	BreedGermanShepherd AnimalBreed = "Pastor Alemão"
	BreedBorderCollie   AnimalBreed = "Border Collie"
	BreedChihuahua      AnimalBreed = "Chihuahua"
	BreedBelgianMal     AnimalBreed = "Pastor Belga Malinois"
	BreedSiberianHusky  AnimalBreed = "Husky Siberiano"
	BreedMaltese        AnimalBreed = "Maltês"
)

type AnimalSize string

const (
	SizeSmall  AnimalSize = "pequeno"
	SizeMedium AnimalSize = "médio"
	SizeLarge  AnimalSize = "grande"
)

type AnimalColor string

const (
	ColorBlack    AnimalColor = "preto"
	ColorWhite    AnimalColor = "branco"
	ColorGray     AnimalColor = "cinza"
	ColorBrown    AnimalColor = "marrom"
	ColorGolden   AnimalColor = "dourado"
	ColorCream    AnimalColor = "creme"
	ColorTan      AnimalColor = "caramelo"
	ColorSpeckled AnimalColor = "malhado"
)

type AnimalFivFelv string

const (
	FivFelvYes       AnimalFivFelv = "sim"
	FivFelvNo        AnimalFivFelv = "não"
	FivFelvNotTested AnimalFivFelv = "não testado"
)

type AnimalStatus string

const (
	StatusQuarantine AnimalStatus = "quarentena"
	StatusSheltered  AnimalStatus = "acolhido"
	StatusAdopted    AnimalStatus = "adotado"
	StatusLost       AnimalStatus = "perdido"
)

// Animal is the backend's animal record. BirthDate is an ISO date string
// (YYYY-MM-DD) or empty; the UI converts it to DD/MM/YYYY for display and
// editing.
type Animal struct {
	UUID      string        `json:"uuid"`
	Name      string        `json:"name"`
	Sex       AnimalSex     `json:"sex"`
	Species   AnimalSpecies `json:"species"`
	Breed     AnimalBreed   `json:"breed"`
	Size      AnimalSize    `json:"size"`
	Color     AnimalColor   `json:"color"`
	BirthDate string        `json:"birthDate,omitempty"`
	Microchip string        `json:"microchip,omitempty"`
	RGA       string        `json:"rga,omitempty"`
	Castrated bool          `json:"castrated"`
	Fiv       AnimalFivFelv `json:"fiv"`
	Felv      AnimalFivFelv `json:"felv"`
	Notes     string        `json:"notes,omitempty"`
	Status    AnimalStatus  `json:"status,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (s AnimalSex) Label() string {
	switch s {
	case SexMale:
		return "Macho"
	case SexFemale:
		return "Fêmea"
	default:
		return string(s)
	}
}

func (s AnimalSpecies) Label() string {
	switch s {
	case SpeciesDog:
		return "Cachorro"
	case SpeciesCat:
		return "Gato"
	default:
		return string(s)
	}
}

// Label for breeds: the wire tokens are already the display names.
func (b AnimalBreed) Label() string { return string(b) }

func (s AnimalSize) Label() string {
	switch s {
	case SizeSmall:
		return "Pequeno"
	case SizeMedium:
		return "Médio"
	case SizeLarge:
		return "Grande"
	default:
		return string(s)
	}
}

func (c AnimalColor) Label() string {
	switch c {
	case ColorBlack:
		return "Preto"
	case ColorWhite:
		return "Branco"
	case ColorGray:
		return "Cinza"
	case ColorBrown:
		return "Marrom"
	case ColorGolden:
		return "Dourado"
	case ColorCream:
		return "Creme"
	case ColorTan:
		return "Caramelo"
	case ColorSpeckled:
		return "Malhado"
	default:
		return string(c)
	}
}

func (f AnimalFivFelv) Label() string {
	switch f {
	case FivFelvYes:
		return "Sim"
	case FivFelvNo:
		return "Não"
	case FivFelvNotTested:
		return "Não testado"
	default:
		return string(f)
	}
}

func (s AnimalStatus) Label() string {
	switch s {
	case StatusQuarantine:
		return "Quarentena"
	case StatusSheltered:
		return "Acolhido"
	case StatusAdopted:
		return "Adotado"
	case StatusLost:
		return "Perdido"
	default:
		return string(s)
	}
}

func SexOptions() []Option {
	return []Option{
		{Value: string(SexMale), Label: SexMale.Label()},
		{Value: string(SexFemale), Label: SexFemale.Label()},
	}
}

func SpeciesOptions() []Option {
	return []Option{
		{Value: string(SpeciesDog), Label: SpeciesDog.Label()},
		{Value: string(SpeciesCat), Label: SpeciesCat.Label()},
	}
}

func BreedOptions() []Option {
	breeds := []AnimalBreed{
		BreedMixed, BreedShihTzu, BreedYorkshire, BreedGermanSpitz,
		BreedFrenchBulldog, BreedPoodle, BreedLhasaApso, BreedGolden,
		BreedRottweiler, BreedLabrador, BreedPug, BreedGermanShepherd,
		BreedBorderCollie, BreedChihuahua, BreedBelgianMal,
		BreedSiberianHusky, BreedMaltese,
	}
	options := make([]Option, 0, len(breeds))
	for _, b := range breeds {
		options = append(options, Option{Value: string(b), Label: b.Label()})
	}
	return options
}

func SizeOptions() []Option {
	return []Option{
		{Value: string(SizeSmall), Label: SizeSmall.Label()},
		{Value: string(SizeMedium), Label: SizeMedium.Label()},
		{Value: string(SizeLarge), Label: SizeLarge.Label()},
	}
}

func ColorOptions() []Option {
	colors := []AnimalColor{
		ColorBlack, ColorWhite, ColorGray, ColorBrown,
		ColorGolden, ColorCream, ColorTan, ColorSpeckled,
	}
	options := make([]Option, 0, len(colors))
	for _, c := range colors {
		options = append(options, Option{Value: string(c), Label: c.Label()})
	}
	return options
}

func FivFelvOptions() []Option {
	return []Option{
		{Value: string(FivFelvYes), Label: FivFelvYes.Label()},
		{Value: string(FivFelvNo), Label: FivFelvNo.Label()},
		{Value: string(FivFelvNotTested), Label: FivFelvNotTested.Label()},
	}
}

func StatusOptions() []Option {
	return []Option{
		{Value: string(StatusQuarantine), Label: StatusQuarantine.Label()},
		{Value: string(StatusSheltered), Label: StatusSheltered.Label()},
		{Value: string(StatusAdopted), Label: StatusAdopted.Label()},
		{Value: string(StatusLost), Label: StatusLost.Label()},
	}
}
