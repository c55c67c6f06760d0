package plan_models

// Municipalities of Catanduanes, as named in the geodata files.
var Municipalities = []string{
	"BAGAMANOC",
	"BARAS",
	"BATO",
	"CARAMORAN",
	"GIGMOTO",
	"PANDAN",
	"PANGANIBAN",
	"SAN ANDRES",
	"SAN MIGUEL",
	"VIGA",
	"VIRAC",
}

// DefaultMunicipality is used when the chat asks for an itinerary before any
// day has a municipality picked.
const DefaultMunicipality = "VIRAC"

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Categories = []Category{
	{ID: "hotels", Label: "Places to Stay"},
	{ID: "restaurants", Label: "Food & Drink"},
	{ID: "falls", Label: "Nature"},
	{ID: "viewpoints", Label: "Things to Do"},
	{ID: "religious", Label: "Religious Sites"},
}

// ActivityPreferences are the tags a visitor can pick on the trip card.
var ActivityPreferences = []string{
	"Swimming",
	"Hiking",
	"Surfing",
	"Sightseeing",
	"Historical",
	"Shopping",
	"Dining",
}

func IsMunicipality(name string) bool {
	for _, m := range Municipalities {
		if m == name {
			return true
		}
	}
	return false
}

func IsCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
