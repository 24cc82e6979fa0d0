package geo

import (
	"math/rand"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Jitter half-ranges in degrees. Matched locations get a small offset so
// pins in the same city don't stack; unmatched ones cluster visibly around
// the default point without landing exactly on it.
const (
	matchedJitter  = 0.01
	fallbackJitter = 0.05
)

// Viewport frame parameters requested from the map surface.
const (
	BoundsPadding = 50
	MaxZoom       = 15
)

// sessionTTL bounds how long a memoized coordinate outlives the render
// session that produced it.
const sessionTTL = 30 * time.Minute

// Projector assigns each property a stable jittered coordinate. The jitter
// is drawn once per property id and memoized so markers don't jump between
// renders; Invalidate drops the memo when the catalog snapshot changes.
type Projector struct {
	gazetteer *Gazetteer
	cache     *ttlcache.Cache[string, Coordinate]

	// mu serializes rng draws (rand.Rand is not goroutine safe) and makes
	// the first draw for an id atomic across concurrent requests.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewProjector(g *Gazetteer) *Projector {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, Coordinate](sessionTTL),
		ttlcache.WithDisableTouchOnHit[string, Coordinate](),
	)
	go cache.Start()

	return &Projector{
		gazetteer: g,
		cache:     cache,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CoordinateFor returns the memoized coordinate for the property,
// computing it on first sight. Unknown locations fall back to the
// gazetteer default with the wider jitter; they are never an error.
func (p *Projector) CoordinateFor(id, location string) Coordinate {
	if item := p.cache.Get(id); item != nil {
		return item.Value()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// re-check under the lock so two concurrent first requests for the
	// same id resolve to one coordinate
	if item := p.cache.Get(id); item != nil {
		return item.Value()
	}

	base, ok := p.gazetteer.Lookup(location)
	jitter := matchedJitter
	if !ok {
		base = p.gazetteer.Default
		jitter = fallbackJitter
	}

	coord := Coordinate{
		Lat: base.Lat + p.offset(jitter),
		Lng: base.Lng + p.offset(jitter),
	}
	p.cache.Set(id, coord, ttlcache.DefaultTTL)
	return coord
}

// offset draws a uniform value in [-r, r). Callers hold mu.
func (p *Projector) offset(r float64) float64 {
	return (p.rng.Float64() - 0.5) * 2 * r
}

// Invalidate drops all memoized coordinates. Call when the underlying
// property list changes.
func (p *Projector) Invalidate() {
	p.cache.DeleteAll()
}

// Bounds is the minimal region covering a marker set.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

// Viewport asks the map surface to frame Bounds with fixed padding, never
// zooming past MaxZoom even for a single point.
type Viewport struct {
	Bounds  Bounds `json:"bounds"`
	Padding int    `json:"padding"`
	MaxZoom int    `json:"maxZoom"`
}

// FitBounds computes the viewport covering all coordinates. With no
// coordinates it reports ok=false and the caller must leave the current
// viewport untouched.
func FitBounds(coords []Coordinate) (Viewport, bool) {
	if len(coords) == 0 {
		return Viewport{}, false
	}

	b := Bounds{
		MinLat: coords[0].Lat, MaxLat: coords[0].Lat,
		MinLng: coords[0].Lng, MaxLng: coords[0].Lng,
	}
	for _, c := range coords[1:] {
		if c.Lat < b.MinLat {
			b.MinLat = c.Lat
		}
		if c.Lat > b.MaxLat {
			b.MaxLat = c.Lat
		}
		if c.Lng < b.MinLng {
			b.MinLng = c.Lng
		}
		if c.Lng > b.MaxLng {
			b.MaxLng = c.Lng
		}
	}

	return Viewport{Bounds: b, Padding: BoundsPadding, MaxZoom: MaxZoom}, true
}
