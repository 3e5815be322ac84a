package store

import (
	"context"
	"time"
)

// KVRepo is a string key-value store.
type KVRepo interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SessionRecord summarizes one finished play session.
type SessionRecord struct {
	SessionID    string
	Mode         string
	Topic        string
	Range        int
	Questions    int
	Correct      int
	BestStreak   int
	HintsUsed    int
	XPEarned     int
	DurationSecs int
	Timestamp    time.Time
}

// SessionRepo records finished sessions.
type SessionRepo interface {
	// AppendSession stores a session summary. A zero Timestamp is set to now.
	AppendSession(ctx context.Context, rec SessionRecord) error

	// RecentSessions returns up to limit sessions, newest first
	// (limit <= 0 returns all).
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
}
