package market

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// MaxPoints is the number of points a Simulator keeps.
const MaxPoints = 20

// step is the simulated time between two points.
const step = 15 * time.Minute

// Point is the value of both indices at a time of day.
type Point struct {
	Timestamp string `json:"timestamp" example:"09:15"` // Time of day in HH:MM
	Nifty     int64  `json:"nifty" example:"18220"`
	Sensex    int64  `json:"sensex" example:"61050"`
}

// Feed produces index values until its context is cancelled.
type Feed interface {
	Run(ctx context.Context) error
	Snapshot() []Point
}

// Simulator is a Feed that makes up index values with a random walk. It is
// only meant for display, the values have no relation to the real market.
type Simulator struct {
	tick time.Duration

	mu     sync.Mutex
	rng    *rand.Rand
	points []Point
}

var seedPoints = []Point{
	{"09:00", 18200, 61000},
	{"09:15", 18220, 61050},
	{"09:30", 18250, 61100},
	{"09:45", 18270, 61150},
	{"10:00", 18300, 61250},
}

// NewSimulator returns a simulator that adds a point every tick. A nil source
// uses a randomly seeded one.
func NewSimulator(tick time.Duration, src rand.Source) *Simulator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	points := make([]Point, len(seedPoints), MaxPoints+1)
	copy(points, seedPoints)

	return &Simulator{
		tick:   tick,
		rng:    rand.New(src),
		points: points,
	}
}

// Run adds a point on every tick until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	log.Debug().Dur("tick", s.tick).Msg("market simulator started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("market simulator stopped")
			return nil
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step adds the next point and drops the oldest one if there are more than
// MaxPoints.
func (s *Simulator) Step() Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := s.points[len(s.points)-1]
	next := Point{
		Timestamp: nextTimestamp(last.Timestamp),
		Nifty:     s.walk(last.Nifty, 10),
		Sensex:    s.walk(last.Sensex, 20),
	}

	s.points = append(s.points, next)
	if len(s.points) > MaxPoints {
		s.points = append(s.points[:0], s.points[1:]...)
	}

	return next
}

// walk moves v by at most maxDelta in a random direction.
func (s *Simulator) walk(v int64, maxDelta float64) int64 {
	delta := -maxDelta
	if s.rng.Float64() > 0.5 {
		delta = maxDelta
	}

	return int64(math.Floor(float64(v) + delta*s.rng.Float64() + 0.5))
}

// Snapshot returns a copy of the current points, oldest first.
func (s *Simulator) Snapshot() []Point {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.points)
}

// nextTimestamp advances an HH:MM time of day by one step, wrapping at
// midnight.
func nextTimestamp(ts string) string {
	var hours, minutes int
	if _, err := fmt.Sscanf(ts, "%d:%d", &hours, &minutes); err != nil {
		return ts
	}

	t := time.Date(0, 1, 1, hours, minutes, 0, 0, time.UTC).Add(step)
	return t.Format("15:04")
}
