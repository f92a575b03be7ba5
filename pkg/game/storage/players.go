package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// CreatePlayer registers a new player with a bcrypt-hashed password.
func (s *Store) CreatePlayer(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("empty username")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM Players WHERE username=?`, username).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: %q", ErrPlayerExists, username)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO Players(username,password_hash,current_room,created_at) VALUES(?,?,?,?)`,
			username, string(hash), "", time.Now().UTC().Format(time.RFC3339Nano))
		return err
	})
}

// Authenticate checks a player's password.
func (s *Store) Authenticate(ctx context.Context, username, password string) error {
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT password_hash FROM Players WHERE username=?`, strings.TrimSpace(username)).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBadCredentials
	}
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrBadCredentials
	}
	return nil
}

// SavePlayerRoom records where the player is standing.
func (s *Store) SavePlayerRoom(ctx context.Context, username, room string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE Players SET current_room=? WHERE username=?`, room, username)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("player %q: %w", username, ErrNotFound)
	}
	return nil
}

// LoadPlayerRoom returns the saved room, or ErrNotFound for a player who has not played.
func (s *Store) LoadPlayerRoom(ctx context.Context, username string) (string, error) {
	var room string
	err := s.db.QueryRowContext(ctx, `SELECT current_room FROM Players WHERE username=?`, username).Scan(&room)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && room == "") {
		return "", fmt.Errorf("player %q room: %w", username, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return room, nil
}
