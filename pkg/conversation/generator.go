package conversation

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Generator produces messages for list positions from a single seed.
// Every call to Message draws fresh values; nothing is memoized.
type Generator struct {
	seed  string
	mu    sync.Mutex
	rng   Rand
	clock func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithRand injects the random source. Useful for deterministic tests.
func WithRand(rng Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithClock overrides the wall clock used for timestamps
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// NewGenerator validates the seed and returns a generator for it
func NewGenerator(seed string, opts ...Option) (*Generator, error) {
	if seed == "" {
		return nil, NewInvalidArgumentError("lastMessage", "must not be empty")
	}

	now := uint64(time.Now().UnixNano())
	g := &Generator{
		seed:  seed,
		rng:   rand.New(rand.NewPCG(now, now>>17|1)),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		return nil, NewInvalidArgumentError("rand", "random source is required")
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	return g, nil
}

// Seed returns the string all message texts are sliced from
func (g *Generator) Seed() string {
	return g.seed
}

// Message builds the message for position
func (g *Generator) Message(position int) (DisplayedMessage, error) {
	// Injected sources such as *rand.Rand are not safe for concurrent use.
	g.mu.Lock()
	defer g.mu.Unlock()
	return Build(g.seed, position, g.rng, g.clock())
}
