package rental

// Rental statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Rental represents a lease a user holds or held on a property.
type Rental struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	PropertyID  string `json:"propertyId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	MonthlyRent int    `json:"monthlyRent"`
	Status      string `json:"status"`

	// Property carries the joined catalog card fields for display; nil
	// when the listing no longer exists.
	Property *PropertyInfo `json:"property,omitempty"`
}

// PropertyInfo is the subset of the property row joined into rental
// listings.
type PropertyInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Image    string `json:"image"`
}
