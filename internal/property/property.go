package property

// Property represents a rental listing and maps to the `public.property` table.
// JSON tags follow the camelCase convention used elsewhere in the project.
// NameTH/LocationTH hold optional Thai display variants; filtering always
// runs against the raw English fields.
type Property struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameTH      *string  `json:"nameTh,omitempty"`
	Location    string   `json:"location"`
	LocationTH  *string  `json:"locationTh,omitempty"`
	Address     string   `json:"address,omitempty"`
	Beds        int      `json:"beds"`
	Baths       int      `json:"baths"`
	Area        int      `json:"area"`
	Price       int      `json:"price"`
	Type        string   `json:"type"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	IsAvailable bool     `json:"isAvailable"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// Summary is the catalog card shape served by the listing endpoints and fed
// to the filter engine. Summaries are immutable value objects; filtering
// never mutates them.
type Summary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	NameTH     *string `json:"nameTh,omitempty"`
	Location   string  `json:"location"`
	LocationTH *string `json:"locationTh,omitempty"`
	Beds       int     `json:"beds"`
	Baths      int     `json:"baths"`
	Area       int     `json:"area"`
	Price      int     `json:"price"`
	Type       string  `json:"type"`
	Image      string  `json:"image"`
}

// Summary returns the catalog card view of a property.
func (p Property) Summary() Summary {
	return Summary{
		ID:         p.ID,
		Name:       p.Name,
		NameTH:     p.NameTH,
		Location:   p.Location,
		LocationTH: p.LocationTH,
		Beds:       p.Beds,
		Baths:      p.Baths,
		Area:       p.Area,
		Price:      p.Price,
		Type:       p.Type,
		Image:      p.Image,
	}
}

// AllowedTypes contains the supported property types used across the app.
var AllowedTypes = []string{
	"House",
	"Condo",
	"Villa",
	"Apartment",
}

// AllowedLocations contains the location values listings are filed under.
var AllowedLocations = []string{
	"Bangkok Central",
	"Pattaya Beach",
	"Chiang Mai",
	"Downtown Metropolis",
}
