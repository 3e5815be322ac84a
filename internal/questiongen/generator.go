package questiongen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator produces randomized arithmetic questions. It is safe to share
// one Generator across goroutines.
type Generator struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand

	// seq is folded into question IDs so that two questions created in the
	// same millisecond still differ.
	seq atomic.Uint64
	now func() time.Time
}

// New creates a Generator seeded from the runtime's random source.
func New(cfg Config) *Generator {
	return NewSeeded(cfg, rand.Uint64(), rand.Uint64())
}

// NewSeeded creates a Generator with a fixed PCG seed, for reproducible output.
func NewSeeded(cfg Config, seed1, seed2 uint64) *Generator {
	if cfg.MaxCloseAttempts <= 0 {
		cfg.MaxCloseAttempts = DefaultConfig().MaxCloseAttempts
	}
	if cfg.DistractorSpread <= 0 {
		cfg.DistractorSpread = DefaultConfig().DistractorSpread
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed1, seed2)),
		now: time.Now,
	}
}

// Generate produces one question with values in [0, numRange], restricted
// to the question types of topic. numRange must be at least MinRange.
func (g *Generator) Generate(numRange int, topic Topic) Question {
	if numRange < MinRange {
		panic(fmt.Sprintf("questiongen: range %d too small for %d distinct options", numRange, OptionCount))
	}
	if topic == "" {
		topic = DefaultTopic
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	types := QuestionTypesFor(topic)
	qt := types[g.rng.IntN(len(types))]
	format := formats[g.rng.IntN(len(formats))]

	q := g.byType(qt, numRange)
	q.ID = g.nextID()
	q.Format = format
	q.Topic = topic
	q.Options = g.options(q.Answer, numRange)
	return q
}

// GenerateN produces count independent questions.
func (g *Generator) GenerateN(count, numRange int, topic Topic) []Question {
	questions := make([]Question, 0, count)
	for range count {
		questions = append(questions, g.Generate(numRange, topic))
	}
	return questions
}

// byType fills the operand, result and answer slots for qt. The sampling
// bounds keep every value, including the derived one, within [0, numRange].
func (g *Generator) byType(qt QuestionType, numRange int) Question {
	var a, b, c int
	q := Question{Type: qt, Operation: qt.Operation()}

	switch qt {
	case AddFindSum:
		a = g.intn(0, numRange)
		b = g.intn(0, numRange-a)
		q.Operand1, q.Operand2, q.Answer = &a, &b, a+b
	case AddFindFirst:
		c = g.intn(1, numRange)
		b = g.intn(0, c)
		q.Operand2, q.Result, q.Answer = &b, &c, c-b
	case AddFindSecond:
		c = g.intn(1, numRange)
		a = g.intn(0, c)
		q.Operand1, q.Result, q.Answer = &a, &c, c-a
	case SubFindDiff:
		a = g.intn(0, numRange)
		b = g.intn(0, a)
		q.Operand1, q.Operand2, q.Answer = &a, &b, a-b
	case SubFindSubtrahend:
		a = g.intn(0, numRange)
		c = g.intn(0, a)
		q.Operand1, q.Result, q.Answer = &a, &c, a-c
	case SubFindMinuend:
		c = g.intn(0, numRange)
		b = g.intn(0, numRange-c)
		q.Operand2, q.Result, q.Answer = &b, &c, b+c
	default:
		panic(fmt.Sprintf("questiongen: unknown question type %q", string(qt)))
	}
	return q
}

// options returns the answer plus distractors in shuffled order.
func (g *Generator) options(answer, numRange int) []int {
	opts := append([]int{answer}, g.distractors(answer, numRange)...)
	g.rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	return opts
}

// distractors picks OptionCount-1 distinct wrong answers in [0, numRange].
// Values near the answer are tried first; once MaxCloseAttempts is spent
// the rest are drawn uniformly from the whole range.
func (g *Generator) distractors(answer, numRange int) []int {
	want := OptionCount - 1
	seen := map[int]bool{answer: true}
	out := make([]int, 0, want)

	add := func(v int) {
		if v < 0 || v > numRange || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	spread := g.cfg.DistractorSpread
	for attempt := 0; len(out) < want && attempt < g.cfg.MaxCloseAttempts; attempt++ {
		add(answer + g.intn(-spread, spread))
	}
	for len(out) < want {
		add(g.intn(0, numRange))
	}
	return out
}

// intn returns a uniform integer in [lo, hi].
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) nextID() string {
	n := g.seq.Add(1)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("q_%d_%d_%s", g.now().UnixMilli(), n, suffix)
}
