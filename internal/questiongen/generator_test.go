package questiongen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewSeeded(DefaultConfig(), 42, 7)
}

// reconstruct fills the missing slot with the answer.
func reconstruct(q Question) (a, b, c int) {
	a, b, c = q.Answer, q.Answer, q.Answer
	if q.Operand1 != nil {
		a = *q.Operand1
	}
	if q.Operand2 != nil {
		b = *q.Operand2
	}
	if q.Result != nil {
		c = *q.Result
	}
	return a, b, c
}

func missingSlots(q Question) int {
	n := 0
	for _, v := range []*int{q.Operand1, q.Operand2, q.Result} {
		if v == nil {
			n++
		}
	}
	return n
}

func TestGenerate_Invariants(t *testing.T) {
	gen := newTestGenerator()

	for _, numRange := range []int{3, 10, 20, 50, 100} {
		for _, topic := range []Topic{TopicAll, TopicAddition, TopicSubtraction, TopicFindResult, TopicFindMissing} {
			for i := 0; i < 200; i++ {
				q := gen.Generate(numRange, topic)

				if missingSlots(q) != 1 {
					t.Fatalf("%s: %d missing slots, want 1", q.Text(), missingSlots(q))
				}

				a, b, c := reconstruct(q)
				switch q.Operation {
				case OpAddition:
					if a+b != c {
						t.Fatalf("%s with answer %d: %d + %d != %d", q.Text(), q.Answer, a, b, c)
					}
				case OpSubtraction:
					if a-b != c {
						t.Fatalf("%s with answer %d: %d - %d != %d", q.Text(), q.Answer, a, b, c)
					}
				default:
					t.Fatalf("unexpected operation %q", q.Operation)
				}

				for _, v := range []int{a, b, c} {
					if v < 0 || v > numRange {
						t.Fatalf("%s: value %d outside [0, %d]", q.Text(), v, numRange)
					}
				}

				if len(q.Options) != OptionCount {
					t.Fatalf("got %d options, want %d", len(q.Options), OptionCount)
				}
				if !slices.Contains(q.Options, q.Answer) {
					t.Fatalf("options %v missing answer %d", q.Options, q.Answer)
				}
				uniq := map[int]bool{}
				for _, o := range q.Options {
					if o < 0 || o > numRange {
						t.Fatalf("option %d outside [0, %d]", o, numRange)
					}
					uniq[o] = true
				}
				if len(uniq) != OptionCount {
					t.Fatalf("options %v are not distinct", q.Options)
				}

				if !slices.Contains(QuestionTypesFor(topic), q.Type) {
					t.Fatalf("type %q not allowed for topic %q", q.Type, topic)
				}
				if q.Topic != topic {
					t.Fatalf("topic = %q, want %q", q.Topic, topic)
				}
				if q.Operation != q.Type.Operation() {
					t.Fatalf("operation %q does not match type %q", q.Operation, q.Type)
				}
				if q.Format != FormatHorizontal && q.Format != FormatVertical {
					t.Fatalf("unexpected format %q", q.Format)
				}
			}
		}
	}
}

func TestGenerate_DefaultTopic(t *testing.T) {
	q := newTestGenerator().Generate(10, "")
	assert.Equal(t, DefaultTopic, q.Topic)
	assert.NotEmpty(t, q.ID)
}

func TestGenerate_TypeShapes(t *testing.T) {
	gen := newTestGenerator()
	seen := map[QuestionType]bool{}

	for i := 0; i < 600; i++ {
		q := gen.Generate(20, TopicAll)
		seen[q.Type] = true

		switch q.Type {
		case AddFindSum, SubFindDiff:
			require.Nil(t, q.Result, q.Text())
			require.NotNil(t, q.Operand1)
			require.NotNil(t, q.Operand2)
		case AddFindFirst, SubFindMinuend:
			require.Nil(t, q.Operand1, q.Text())
			require.NotNil(t, q.Result)
		case AddFindSecond, SubFindSubtrahend:
			require.Nil(t, q.Operand2, q.Text())
			require.NotNil(t, q.Result)
		}
	}

	assert.Len(t, seen, len(AllQuestionTypes()), "all types should appear in 600 draws")
}

func TestGenerateN(t *testing.T) {
	gen := newTestGenerator()
	qs := gen.GenerateN(10, 20, TopicSubtraction)
	require.Len(t, qs, 10)

	ids := map[string]bool{}
	for _, q := range qs {
		assert.Equal(t, TopicSubtraction, q.Topic)
		assert.Equal(t, OpSubtraction, q.Operation)
		ids[q.ID] = true
	}
	assert.Len(t, ids, 10, "ids must be unique")

	assert.Empty(t, gen.GenerateN(0, 20, TopicAll))
}

func TestGenerate_UniqueIDsAcrossGenerators(t *testing.T) {
	g1, g2 := newTestGenerator(), newTestGenerator()
	ids := map[string]bool{}
	for i := 0; i < 50; i++ {
		ids[g1.Generate(10, TopicAll).ID] = true
		ids[g2.Generate(10, TopicAll).ID] = true
	}
	assert.Len(t, ids, 100)
}

func TestGenerate_SeededIsReproducible(t *testing.T) {
	g1, g2 := newTestGenerator(), newTestGenerator()
	for i := 0; i < 20; i++ {
		q1, q2 := g1.Generate(50, TopicAll), g2.Generate(50, TopicAll)
		assert.Equal(t, q1.Text(), q2.Text())
		assert.Equal(t, q1.Options, q2.Options)
	}
}

func TestGenerate_RangeTooSmallPanics(t *testing.T) {
	gen := newTestGenerator()
	assert.Panics(t, func() { gen.Generate(2, TopicAll) })
}

func TestByType_UnknownPanics(t *testing.T) {
	gen := newTestGenerator()
	assert.Panics(t, func() { gen.byType(QuestionType("mul_find_product"), 10) })
}

func TestDistractors_CloseToAnswer(t *testing.T) {
	gen := newTestGenerator()
	for i := 0; i < 200; i++ {
		ds := gen.distractors(50, 100)
		require.Len(t, ds, 3)
		for _, d := range ds {
			assert.NotEqual(t, 50, d)
			assert.LessOrEqual(t, abs(d-50), 5, "distractor %d too far from answer", d)
		}
	}
}

func TestDistractors_FallbackAtRangeEdge(t *testing.T) {
	// With range 3 and answer 0 only 1..3 remain, all within the spread.
	gen := NewSeeded(Config{DistractorSpread: 5, MaxCloseAttempts: 1}, 1, 2)
	for i := 0; i < 50; i++ {
		ds := gen.distractors(0, 3)
		slices.Sort(ds)
		assert.Equal(t, []int{1, 2, 3}, ds)
	}
}

func TestQuestionText(t *testing.T) {
	three, four, seven := 3, 4, 7
	tests := []struct {
		name string
		q    Question
		want string
	}{
		{"find sum", Question{Operand1: &three, Operand2: &four, Operation: OpAddition}, "3 + 4 = ?"},
		{"find first", Question{Operand2: &four, Result: &seven, Operation: OpAddition}, "? + 4 = 7"},
		{"find subtrahend", Question{Operand1: &seven, Result: &three, Operation: OpSubtraction}, "7 - ? = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Text())
		})
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
