package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const sessionTable = "session_events"

var sessionColumns = []string{
	"session_id", "mode", "topic", "number_range", "questions", "correct",
	"best_streak", "hints_used", "xp_earned", "duration_secs", "timestamp",
}

// sessionRepo implements SessionRepo on the session_events table.
type sessionRepo struct {
	drv *entsql.Driver
}

func (r *sessionRepo) AppendSession(ctx context.Context, rec SessionRecord) error {
	if rec.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionTable).
		Columns(sessionColumns...).
		Values(
			rec.SessionID, rec.Mode, rec.Topic, rec.Range, rec.Questions, rec.Correct,
			rec.BestStreak, rec.HintsUsed, rec.XPEarned, rec.DurationSecs, ts.UTC().UnixMilli(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *sessionRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(sessionColumns...).
		From(b.Table(sessionTable)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var (
			rec SessionRecord
			ts  int64
		)
		if err := rows.Scan(
			&rec.SessionID, &rec.Mode, &rec.Topic, &rec.Range, &rec.Questions, &rec.Correct,
			&rec.BestStreak, &rec.HintsUsed, &rec.XPEarned, &rec.DurationSecs, &ts,
		); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts).UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read session events: %w", err)
	}
	return records, nil
}
