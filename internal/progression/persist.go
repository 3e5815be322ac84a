package progression

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// StorageKey is the key the level record is stored under.
const StorageKey = "mathfun-level-data"

// KV is the key-value store the level record is persisted in.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Logf receives diagnostics for failures that are otherwise swallowed.
type Logf func(format string, args ...any)

// LevelStore loads and saves LevelData on a best-effort basis: read failures
// and malformed records load as DefaultLevelData, write failures are dropped.
type LevelStore struct {
	kv   KV
	logf Logf
}

// NewLevelStore creates a LevelStore over kv. A nil kv makes every Load
// return the default and every Save a no-op.
func NewLevelStore(kv KV, logf Logf) *LevelStore {
	return &LevelStore{kv: kv, logf: logf}
}

// Load returns the stored record or DefaultLevelData.
func (s *LevelStore) Load(ctx context.Context) LevelData {
	if s.kv == nil {
		return DefaultLevelData()
	}
	raw, ok, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		s.log("load level data: %v", err)
		return DefaultLevelData()
	}
	if !ok {
		return DefaultLevelData()
	}
	data, err := decodeLevelData([]byte(raw))
	if err != nil {
		s.log("discarding stored level data: %v", err)
		return DefaultLevelData()
	}
	return data
}

// Save writes data. Failures are logged and otherwise ignored.
func (s *LevelStore) Save(ctx context.Context, data LevelData) {
	if s.kv == nil {
		return
	}
	b, err := json.Marshal(data)
	if err != nil {
		s.log("encode level data: %v", err)
		return
	}
	if err := s.kv.Set(ctx, StorageKey, string(b)); err != nil {
		s.log("save level data: %v", err)
	}
}

func (s *LevelStore) log(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}

// levelDataSchema describes the stored record's shape.
var levelDataSchema = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"level", "currentXP", "totalXP"},
	"properties": map[string]any{
		"level":     map[string]any{"type": "integer", "minimum": 1, "maximum": MaxLevel},
		"currentXP": map[string]any{"type": "integer"},
		"totalXP":   map[string]any{"type": "integer", "minimum": 0},
	},
}

var compiledLevelDataSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	const url = "schema://level-data.json"
	if err := c.AddResource(url, levelDataSchema); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
})

// decodeLevelData validates raw against the level schema and decodes it.
func decodeLevelData(raw []byte) (LevelData, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return LevelData{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledLevelDataSchema()
	if err != nil {
		return LevelData{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return LevelData{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var data LevelData
	if err := json.Unmarshal(raw, &data); err != nil {
		return LevelData{}, fmt.Errorf("decode: %w", err)
	}
	return data, nil
}
