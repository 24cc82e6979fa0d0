package wishlist

// Item is a denormalized snapshot of a property card. Storing the full
// snapshot keeps a saved listing displayable even after it leaves the
// catalog feed.
type Item struct {
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
