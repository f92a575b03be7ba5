package storage

import (
	"context"
	"time"
)

// Result is one finished game.
type Result struct {
	Username     string
	SessionID    string
	TimeTaken    time.Duration
	RoomsCleaned int
	Outcome      string
	Timestamp    time.Time
}

// RecordResult appends a finished game.
func (s *Store) RecordResult(ctx context.Context, r Result) error {
	ts := r.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO GameResults(username,session_id,time_taken_ms,rooms_cleaned,result,timestamp) VALUES(?,?,?,?,?,?)`,
		r.Username, r.SessionID, r.TimeTaken.Milliseconds(), r.RoomsCleaned, r.Outcome, ts.UTC().Format(time.RFC3339Nano))
	return err
}

// TopResults returns the fastest wins, then everything else by most rooms cleaned.
func (s *Store) TopResults(ctx context.Context, n int) ([]Result, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.QueryContext(ctx, `SELECT username,session_id,time_taken_ms,rooms_cleaned,result,timestamp
		FROM GameResults
		ORDER BY (result='win') DESC, CASE WHEN result='win' THEN time_taken_ms ELSE -rooms_cleaned END ASC, id ASC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			r  Result
			ms int64
			ts string
		)
		if err := rows.Scan(&r.Username, &r.SessionID, &ms, &r.RoomsCleaned, &r.Outcome, &ts); err != nil {
			return nil, err
		}
		r.TimeTaken = time.Duration(ms) * time.Millisecond
		r.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, r)
	}
	return out, rows.Err()
}
