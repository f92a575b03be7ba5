package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/agent"
)

// SaveRooms replaces the stored house with rooms.
func (s *Store) SaveRooms(ctx context.Context, rooms []*world.Room) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM RoomConnections`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM Rooms`); err != nil {
			return err
		}

		insRoom, err := tx.PrepareContext(ctx, `INSERT INTO Rooms(name,x,y,is_clean,last_cleaned) VALUES(?,?,?,?,?)`)
		if err != nil {
			return err
		}
		defer insRoom.Close()
		for _, r := range rooms {
			var last any
			if !r.LastCleaned.IsZero() {
				last = r.LastCleaned.UTC().Format(time.RFC3339Nano)
			}
			if _, err := insRoom.ExecContext(ctx, r.Name, r.X, r.Y, boolToInt(r.Clean), last); err != nil {
				return fmt.Errorf("room %q: %w", r.Name, err)
			}
		}

		insConn, err := tx.PrepareContext(ctx, `INSERT INTO RoomConnections(from_room,direction,to_room) VALUES(?,?,?)`)
		if err != nil {
			return err
		}
		defer insConn.Close()
		for _, r := range rooms {
			for _, dir := range world.AllDirections() {
				to := r.GetNeighbor(dir)
				if to == "" {
					continue
				}
				if _, err := insConn.ExecContext(ctx, r.Name, dir.String(), to); err != nil {
					return fmt.Errorf("room %q %s: %w", r.Name, dir, err)
				}
			}
		}
		return nil
	})
}

// LoadRooms restores the house: positions, clean flags and connections.
func (s *Store) LoadRooms(ctx context.Context) ([]*world.Room, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name,x,y,is_clean,last_cleaned FROM Rooms ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*world.Room
	byName := make(map[string]*world.Room)
	for rows.Next() {
		var (
			name  string
			x, y  int
			clean int
			last  sql.NullString
		)
		if err := rows.Scan(&name, &x, &y, &clean, &last); err != nil {
			return nil, err
		}
		r := world.NewRoom(name, x, y)
		r.Clean = clean != 0
		if last.Valid {
			if t, err := time.Parse(time.RFC3339Nano, last.String); err == nil {
				r.LastCleaned = t
			}
		}
		rooms = append(rooms, r)
		byName[name] = r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("rooms: %w", ErrNotFound)
	}

	crows, err := s.db.QueryContext(ctx, `SELECT from_room,direction,to_room FROM RoomConnections`)
	if err != nil {
		return nil, err
	}
	defer crows.Close()
	for crows.Next() {
		var from, label, to string
		if err := crows.Scan(&from, &label, &to); err != nil {
			return nil, err
		}
		dir, ok := world.ParseDirection(label)
		if !ok {
			return nil, fmt.Errorf("room %q: bad direction %q", from, label)
		}
		if r, ok := byName[from]; ok {
			r.Connect(dir, to)
		}
	}
	return rooms, crows.Err()
}

// SaveAgent stores the single agent row.
func (s *Store) SaveAgent(ctx context.Context, a *agent.Agent) error {
	path := a.Path
	if path == nil {
		path = []string{}
	}
	pathJSON, err := json.Marshal(path)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO Agent(agent_id,current_room,target,path_json,wait_counter,wait_threshold)
		VALUES(1,?,?,?,?,?)
		ON CONFLICT(agent_id) DO UPDATE SET
			current_room=excluded.current_room,
			target=excluded.target,
			path_json=excluded.path_json,
			wait_counter=excluded.wait_counter,
			wait_threshold=excluded.wait_threshold`,
		a.Room, a.Target, string(pathJSON), a.WaitCounter, a.WaitThreshold)
	return err
}

// LoadAgent restores the agent. The caller supplies its randomness source.
func (s *Store) LoadAgent(ctx context.Context) (*agent.Agent, error) {
	a := &agent.Agent{}
	var pathJSON string
	err := s.db.QueryRowContext(ctx, `SELECT current_room,target,path_json,wait_counter,wait_threshold FROM Agent WHERE agent_id=1`).
		Scan(&a.Room, &a.Target, &pathJSON, &a.WaitCounter, &a.WaitThreshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("agent: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(pathJSON), &a.Path); err != nil {
		return nil, fmt.Errorf("agent path: %w", err)
	}
	if len(a.Path) == 0 {
		a.Path = nil
	}
	return a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
