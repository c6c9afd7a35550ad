package selector

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/Andrew-Davis-Ai-portfolio/Ai-Ethics-Speech-Coach/internal/catalog"
)

// ErrNoQuestions is returned when a track has nothing to pick from.
var ErrNoQuestions = errors.New("track has no questions")

// Selector chooses the next question within a track.
type Selector interface {
	Pick(track catalog.Track) (catalog.Question, error)
}

// Random picks uniformly from the whole track. It keeps no history, so
// the same question can come up twice in a row.
type Random struct {
	rng *rand.Rand
}

var _ Selector = (*Random)(nil)

// NewRandom returns a Random selector seeded from the runtime source.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a Random selector with a deterministic sequence.
func NewSeeded(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (r *Random) Pick(track catalog.Track) (catalog.Question, error) {
	if len(track.Questions) == 0 {
		return catalog.Question{}, fmt.Errorf("%w: %q", ErrNoQuestions, track.ID)
	}
	return track.Questions[r.rng.IntN(len(track.Questions))], nil
}

// NoRepeat picks uniformly among the track's questions except the one it
// returned last for that track. Tracks with a single question always
// return that question.
type NoRepeat struct {
	rng  *rand.Rand
	last map[string]string // track id -> question id
}

var _ Selector = (*NoRepeat)(nil)

// NewNoRepeat returns a NoRepeat selector. A zero seed draws one from the
// runtime source.
func NewNoRepeat(seed uint64) *NoRepeat {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &NoRepeat{
		rng:  rand.New(rand.NewPCG(seed, seed)),
		last: make(map[string]string),
	}
}

func (n *NoRepeat) Pick(track catalog.Track) (catalog.Question, error) {
	if len(track.Questions) == 0 {
		return catalog.Question{}, fmt.Errorf("%w: %q", ErrNoQuestions, track.ID)
	}

	candidates := lo.Filter(track.Questions, func(q catalog.Question, _ int) bool {
		return q.ID != n.last[track.ID]
	})
	if len(candidates) == 0 {
		candidates = track.Questions
	}

	q := candidates[n.rng.IntN(len(candidates))]
	n.last[track.ID] = q.ID
	return q, nil
}
