package feed

import (
	"math/rand"
	"time"

	"github.com/nhle/notifications/internal/model"
)

// DefaultCount is the number of notifications generated per session.
const DefaultCount = 50

// DefaultMaxDaysAgo bounds how many days back a notification can be sent.
const DefaultMaxDaysAgo = 10

// Generator produces synthetic notification batches. It is not safe for
// concurrent use because the underlying *rand.Rand is not.
type Generator struct {
	rng        *rand.Rand
	now        func() time.Time
	maxDaysAgo int
	pool       Pool
	paired     bool
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the source of "now". The clock's location decides
// which calendar day a notification falls on.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// WithMaxDaysAgo sets the inclusive upper bound on the day offset.
func WithMaxDaysAgo(days int) GeneratorOption {
	return func(g *Generator) {
		if days >= 0 {
			g.maxDaysAgo = days
		}
	}
}

// WithPool replaces the built-in content pool.
func WithPool(p Pool) GeneratorOption {
	return func(g *Generator) { g.pool = p }
}

// WithPairedContent makes the body follow the sampled title's index.
func WithPairedContent(paired bool) GeneratorOption {
	return func(g *Generator) { g.paired = paired }
}

// NewGenerator creates a Generator drawing from rng. It panics if the
// configured pool is empty, since that can only come from a bad WithPool
// argument.
func NewGenerator(rng *rand.Rand, opts ...GeneratorOption) *Generator {
	g := &Generator{
		rng:        rng,
		now:        time.Now,
		maxDaysAgo: DefaultMaxDaysAgo,
		pool:       DefaultPool(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.pool.Validate(); err != nil {
		panic(err)
	}
	if g.paired && len(g.pool.Titles) != len(g.pool.Bodies) {
		panic("feed: paired content requires equal title and body counts")
	}
	return g
}

// NewSeededGenerator is a convenience for NewGenerator(rand.New(rand.NewSource(seed)), ...).
// A zero seed uses the current time.
func NewSeededGenerator(seed int64, opts ...GeneratorOption) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.New(rand.NewSource(seed)), opts...)
}

// Generate returns count notifications with IDs 1..count in order. A
// negative count yields an empty slice.
func (g *Generator) Generate(count int) []model.Notification {
	if count < 0 {
		count = 0
	}

	now := g.now()
	types := model.NotificationTypes()
	out := make([]model.Notification, 0, count)

	for id := 1; id <= count; id++ {
		titleIdx := g.rng.Intn(len(g.pool.Titles))
		bodyIdx := titleIdx
		if !g.paired {
			bodyIdx = g.rng.Intn(len(g.pool.Bodies))
		}

		out = append(out, model.Notification{
			ID:     id,
			Title:  g.pool.Titles[titleIdx],
			Body:   g.pool.Bodies[bodyIdx],
			Type:   types[g.rng.Intn(len(types))],
			SendAt: g.sendAt(now),
		})
	}

	return out
}

// sendAt picks a day in [0, maxDaysAgo] before now and a random
// hour:minute on it. A time on today that lands after now is moved back
// one day so notifications are never in the future.
func (g *Generator) sendAt(now time.Time) time.Time {
	daysAgo := g.rng.Intn(g.maxDaysAgo + 1)
	hour := g.rng.Intn(24)
	minute := g.rng.Intn(60)

	y, m, d := now.Date()
	t := time.Date(y, m, d-daysAgo, hour, minute, 0, 0, now.Location())
	if t.After(now) {
		t = time.Date(y, m, d-daysAgo-1, hour, minute, 0, 0, now.Location())
	}
	return t
}

// EarliestSendAt returns the lower bound for SendAt of a batch generated
// at now: the start of the day maxDaysAgo days earlier, or one day more
// when maxDaysAgo is zero and the rollback applies.
func EarliestSendAt(now time.Time, maxDaysAgo int) time.Time {
	y, m, d := now.Date()
	back := maxDaysAgo
	if back == 0 {
		back = 1
	}
	return time.Date(y, m, d-back, 0, 0, 0, 0, now.Location())
}
