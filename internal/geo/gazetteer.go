package geo

import "strings"

// Coordinate is a WGS 84 (lat, lng) pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Gazetteer maps known location names to coordinates. Lookup is a
// case-insensitive substring match in both directions so "Pattaya" matches
// a listing filed under "Pattaya Beach" and vice versa.
type Gazetteer struct {
	entries []gazetteerEntry
	// Default is returned (with a wider jitter) for locations no entry
	// matches.
	Default Coordinate
}

type gazetteerEntry struct {
	name  string
	coord Coordinate
}

// DefaultGazetteer covers the Thai locations listings are filed under,
// falling back to Bangkok.
func DefaultGazetteer() *Gazetteer {
	g := &Gazetteer{Default: Coordinate{Lat: 13.7563, Lng: 100.5018}}
	for _, e := range []struct {
		name string
		lat  float64
		lng  float64
	}{
		{"Pattaya Beach", 12.9236, 100.8825},
		{"Pattaya", 12.9236, 100.8825},
		{"Bangkok Central", 13.7563, 100.5018},
		{"Bangkok", 13.7563, 100.5018},
		{"Chiang Mai", 18.7883, 98.9853},
		{"Downtown Metropolis", 13.7563, 100.5018},
		{"Phuket", 7.8804, 98.3923},
		{"Koh Samui", 9.5120, 100.0136},
		{"Hua Hin", 12.5684, 99.9577},
	} {
		g.Add(e.name, Coordinate{Lat: e.lat, Lng: e.lng})
	}
	return g
}

func (g *Gazetteer) Add(name string, coord Coordinate) {
	g.entries = append(g.entries, gazetteerEntry{name: name, coord: coord})
}

// Lookup returns the coordinate of the first entry matching the location.
func (g *Gazetteer) Lookup(location string) (Coordinate, bool) {
	loc := strings.ToLower(location)
	if loc == "" {
		return Coordinate{}, false
	}
	for _, e := range g.entries {
		name := strings.ToLower(e.name)
		if strings.Contains(loc, name) || strings.Contains(name, loc) {
			return e.coord, true
		}
	}
	return Coordinate{}, false
}

// CenterFor picks the map center: a gazetteer match for the search query,
// else the first visible property's location, else the default point.
func (g *Gazetteer) CenterFor(query string, locations []string) Coordinate {
	if query != "" {
		if coord, ok := g.Lookup(query); ok {
			return coord
		}
	}
	for _, loc := range locations {
		if coord, ok := g.Lookup(loc); ok {
			return coord
		}
	}
	return g.Default
}
