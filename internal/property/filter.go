package property

import "strings"

// Sentinel values meaning "no restriction" for the matching criterion.
// They mirror the raw option values the web client sends.
const (
	AnyLocation = "All Locations"
	AnyType     = "All Types"
)

// PriceBucket is one of the closed set of monthly-rent ranges.
type PriceBucket string

const (
	BucketAny      PriceBucket = "anyPrice"
	BucketUnder20K PriceBucket = "under20k"
	Bucket20K40K   PriceBucket = "20k40k"
	Bucket40K60K   PriceBucket = "40k60k"
	BucketOver60K  PriceBucket = "over60k"
)

// Criteria is an immutable filter snapshot. The zero value matches
// everything except that Location/Type must be set to their sentinels;
// use NewCriteria to get a pass-all snapshot.
type Criteria struct {
	Location string
	Type     string
	MinBeds  int
	Bucket   PriceBucket
	Query    string
}

// NewCriteria returns a criteria snapshot with every field at its
// no-restriction sentinel.
func NewCriteria() Criteria {
	return Criteria{
		Location: AnyLocation,
		Type:     AnyType,
		MinBeds:  0,
		Bucket:   BucketAny,
	}
}

// Filter returns the subset of summaries matching all active criteria, in
// the input's relative order. Pure and single-pass; an empty input yields
// an empty output, never an error.
func Filter(all []Summary, c Criteria) []Summary {
	out := make([]Summary, 0, len(all))
	for _, s := range all {
		if c.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether the summary passes every active criterion.
// Criteria combine with logical AND. Location and type compare against the
// raw English values regardless of display locale.
func (c Criteria) Matches(s Summary) bool {
	if c.Location != AnyLocation && c.Location != "" && s.Location != c.Location {
		return false
	}
	if c.Type != AnyType && c.Type != "" && s.Type != c.Type {
		return false
	}
	if c.MinBeds > 0 && s.Beds < c.MinBeds {
		return false
	}
	if !c.Bucket.Contains(s.Price) {
		return false
	}
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.Location), q) {
			return false
		}
	}
	return true
}

// Contains reports whether the monthly rent falls inside the bucket.
// Adjacent buckets deliberately share their 20000/40000/60000 boundaries,
// matching the shipped filtering behavior; a listing at exactly 40000
// satisfies both 20k40k and 40k60k. An unknown bucket value matches
// nothing.
func (b PriceBucket) Contains(price int) bool {
	switch b {
	case BucketAny, "":
		return true
	case BucketUnder20K:
		return price < 20000
	case Bucket20K40K:
		return price >= 20000 && price <= 40000
	case Bucket40K60K:
		return price >= 40000 && price <= 60000
	case BucketOver60K:
		return price > 60000
	default:
		return false
	}
}

// Active returns how many criteria are restricting the result set.
func (c Criteria) Active() int {
	n := 0
	if c.Location != AnyLocation && c.Location != "" {
		n++
	}
	if c.Type != AnyType && c.Type != "" {
		n++
	}
	if c.MinBeds > 0 {
		n++
	}
	if c.Bucket != BucketAny && c.Bucket != "" {
		n++
	}
	if c.Query != "" {
		n++
	}
	return n
}
