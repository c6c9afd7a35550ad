package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/samber/lo"
)

//go:embed default.yaml
var defaultCatalog []byte

var (
	ErrDuplicateTrack = errors.New("duplicate track id")
	ErrEmptyTrackID   = errors.New("empty track id")
)

// Catalog is the read-only set of tracks available to a session.
// Tracks keep the order in which they were supplied.
type Catalog struct {
	tracks []Track
	byID   map[string]int
}

// New builds a Catalog from tracks. Only identity is checked here;
// structural validation happens in Load.
func New(tracks ...Track) (*Catalog, error) {
	c := &Catalog{
		tracks: make([]Track, 0, len(tracks)),
		byID:   make(map[string]int, len(tracks)),
	}
	for _, t := range tracks {
		if t.ID == "" {
			return nil, ErrEmptyTrackID
		}
		if _, exists := c.byID[t.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTrack, t.ID)
		}
		c.byID[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t)
	}
	return c, nil
}

// Default returns the built-in AI ethics catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("parse built-in catalog: %w", err)
	}
	return c, nil
}

// Track looks up a track by id.
func (c *Catalog) Track(id string) (Track, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Tracks returns all tracks in catalog order.
func (c *Catalog) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// IDs returns all track ids in catalog order.
func (c *Catalog) IDs() []string {
	return lo.Map(c.tracks, func(t Track, _ int) string { return t.ID })
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// QuestionCount returns the total number of questions across all tracks.
func (c *Catalog) QuestionCount() int {
	return lo.SumBy(c.tracks, func(t Track) int { return len(t.Questions) })
}
