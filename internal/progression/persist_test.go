package progression

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is an in-memory KV with injectable failures.
type memKV struct {
	values  map[string]string
	getErr  error
	setErr  error
	setCall int
}

func newMemKV() *memKV {
	return &memKV{values: map[string]string{}}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.setCall++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func TestLevelStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	s := NewLevelStore(kv, nil)

	want := LevelData{Level: 3, CurrentXP: 210, TotalXP: 210}
	s.Save(ctx, want)

	assert.JSONEq(t, `{"level":3,"currentXP":210,"totalXP":210}`, kv.values[StorageKey])
	assert.Equal(t, want, s.Load(ctx))
}

func TestLevelStore_LoadDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
	}{
		{"missing", nil},
		{"garbage", ptr("not json")},
		{"array", ptr(`[1,2,3]`)},
		{"missing field", ptr(`{"level":2,"totalXP":60}`)},
		{"string field", ptr(`{"level":"2","currentXP":60,"totalXP":60}`)},
		{"null field", ptr(`{"level":2,"currentXP":null,"totalXP":60}`)},
		{"fractional level", ptr(`{"level":2.5,"currentXP":60,"totalXP":60}`)},
		{"level out of table", ptr(`{"level":11,"currentXP":60,"totalXP":60}`)},
		{"negative total", ptr(`{"level":1,"currentXP":0,"totalXP":-5}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newMemKV()
			if tt.stored != nil {
				kv.values[StorageKey] = *tt.stored
			}
			var logged []string
			s := NewLevelStore(kv, func(format string, args ...any) {
				logged = append(logged, fmt.Sprintf(format, args...))
			})

			assert.Equal(t, DefaultLevelData(), s.Load(context.Background()))
			if tt.stored != nil {
				assert.NotEmpty(t, logged, "corrupt record should be reported")
			}
		})
	}
}

func TestLevelStore_ExtraFieldsAccepted(t *testing.T) {
	kv := newMemKV()
	kv.values[StorageKey] = `{"level":2,"currentXP":60,"totalXP":60,"theme":"dark"}`
	s := NewLevelStore(kv, nil)
	assert.Equal(t, LevelData{Level: 2, CurrentXP: 60, TotalXP: 60}, s.Load(context.Background()))
}

func TestLevelStore_StorageFailuresSwallowed(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.getErr = errors.New("disk on fire")
	kv.setErr = errors.New("disk full")
	s := NewLevelStore(kv, nil)

	assert.Equal(t, DefaultLevelData(), s.Load(ctx))
	require.NotPanics(t, func() { s.Save(ctx, LevelData{Level: 2, TotalXP: 50}) })
	assert.Equal(t, 1, kv.setCall)
}

func TestLevelStore_NilKV(t *testing.T) {
	s := NewLevelStore(nil, nil)
	s.Save(context.Background(), LevelData{Level: 5})
	assert.Equal(t, DefaultLevelData(), s.Load(context.Background()))
}

func ptr(s string) *string { return &s }
