// Package session runs one player's game against the save store: login, restoring or
// starting the house, the tick loop, saving after every tick and resetting the house
// once a game is decided.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	engineinput "cleanhouse/pkg/engine/input"
	"cleanhouse/pkg/engine/world"
	"cleanhouse/pkg/game/agent"
	"cleanhouse/pkg/game/config"
	"cleanhouse/pkg/game/gameplay"
	"cleanhouse/pkg/game/journal"
	"cleanhouse/pkg/game/layout"
	"cleanhouse/pkg/game/messages"
	"cleanhouse/pkg/game/state"
	"cleanhouse/pkg/game/storage"
)

const leaderboardSize = 5

// Options identify the player.
type Options struct {
	Username string
	Password string
	Fresh    bool // ignore the saved house and start over
}

// Frontend is the part of a renderer the loop needs.
type Frontend interface {
	Clear()
	RenderFrame(g *state.Game)
	GetInput() engineinput.Intent
}

// Session ties a running game to its store and journal.
type Session struct {
	Game *state.Game

	// Notice greets the player after login; empty when persistence is off.
	Notice string

	cfg      config.Config
	rng      *rand.Rand
	layout   layout.Doc
	username string
	store    *storage.Store // nil when persistence is off
	journal  *journal.Writer
}

// Open logs the player in, then restores the saved house or starts a fresh one.
// A nil rng is seeded from cfg.Seed, or the clock when that is zero.
func Open(ctx context.Context, cfg config.Config, opts Options, rng *rand.Rand) (*Session, error) {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	doc := layout.Default()
	if cfg.Layout != "" {
		var err error
		if doc, err = layout.Load(cfg.Layout); err != nil {
			return nil, err
		}
	}
	s := &Session{cfg: cfg, rng: rng, layout: doc, username: opts.Username}

	if cfg.Database != "" {
		store, err := storage.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		s.store = store
		if err := s.login(ctx, opts.Password); err != nil {
			s.Close()
			return nil, err
		}
	}

	if err := s.buildGame(ctx, opts.Fresh); err != nil {
		s.Close()
		return nil, err
	}

	if cfg.JournalDir != "" {
		w, err := journal.Open(cfg.JournalDir, s.Game.SessionID)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.journal = w
		log.Printf("Journal: %s", w.Path())
	}
	log.Printf("Session %s started for %q (renderer=%s, db=%q)", s.Game.SessionID, s.username, cfg.Renderer, cfg.Database)
	return s, nil
}

// login authenticates the player, creating the account on first use.
// A wrong password for an existing player is ErrBadCredentials.
func (s *Session) login(ctx context.Context, password string) error {
	err := s.store.Authenticate(ctx, s.username, password)
	if err == nil {
		s.Notice = messages.Getf("WELCOME_BACK", s.username)
		return nil
	}
	if !errors.Is(err, storage.ErrBadCredentials) {
		return err
	}
	if err := s.store.CreatePlayer(ctx, s.username, password); err != nil {
		if errors.Is(err, storage.ErrPlayerExists) {
			return storage.ErrBadCredentials
		}
		return err
	}
	s.Notice = messages.Getf("NEW_PLAYER", s.username)
	return nil
}

// buildGame restores the saved house, player room and child, or starts a fresh one.
func (s *Session) buildGame(ctx context.Context, fresh bool) error {
	rooms, err := s.layout.Build()
	if err != nil {
		return err
	}

	restore := s.store != nil && !fresh
	if restore {
		saved, err := s.store.LoadRooms(ctx)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			restore = false
		case err != nil:
			return err
		default:
			rooms = saved
		}
	}

	g, err := gameplay.NewSession(s.cfg, rooms, s.rng)
	if err != nil {
		return err
	}
	g.Username = s.username
	s.Game = g

	if !restore {
		return s.persist(ctx)
	}

	playerRoom, err := s.store.LoadPlayerRoom(ctx, s.username)
	if errors.Is(err, storage.ErrNotFound) {
		playerRoom = s.cfg.Win.StartRoom
	} else if err != nil {
		return err
	}
	a, err := s.store.LoadAgent(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		a = g.Agent
	} else if err != nil {
		return err
	}
	a.SetRand(s.rng)
	if err := gameplay.Restore(g, playerRoom, a); err != nil {
		return err
	}
	log.Printf("Restored house: player in %q, child in %q", playerRoom, a.Room)
	return nil
}

// Play runs the tick loop until the game is decided or the player quits.
func (s *Session) Play(ctx context.Context, fe Frontend) error {
	for {
		fe.Clear()
		fe.RenderFrame(s.Game)
		if s.Game.Finished() {
			return nil
		}
		if _, err := s.Advance(ctx, fe.GetInput()); err != nil {
			return err
		}
	}
}

// Advance runs one tick for intent, journals it, and saves the house. When the tick
// decides the game the result is recorded and the saved house reset instead.
// Blank input and finished games are left alone.
func (s *Session) Advance(ctx context.Context, intent engineinput.Intent) (state.Outcome, error) {
	g := s.Game
	if g.Finished() || intent.IsBlank() {
		return g.Outcome, nil
	}

	outcome, err := gameplay.Step(g, intent)
	if err != nil {
		return outcome, err
	}
	if err := s.record(intent); err != nil {
		log.Printf("journal: %v", err)
	}

	if outcome != state.Continue {
		err = s.finish(ctx)
	} else {
		err = s.persist(ctx)
	}
	return outcome, err
}

// persist saves rooms, the child and the player's room.
func (s *Session) persist(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	g := s.Game
	if err := s.store.SaveRooms(ctx, g.World.Rooms()); err != nil {
		return fmt.Errorf("save rooms: %w", err)
	}
	if err := s.store.SaveAgent(ctx, g.Agent); err != nil {
		return fmt.Errorf("save agent: %w", err)
	}
	if err := s.store.SavePlayerRoom(ctx, s.username, g.PlayerRoom); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("save player room: %w", err)
	}
	return nil
}

// finish records the result and resets the saved house so the next session starts over:
// every room dirty, a new child in a random room, the player back at the start room.
func (s *Session) finish(ctx context.Context) error {
	g := s.Game
	log.Printf("Session %s ended: %s after %d ticks, %d rooms cleaned", g.SessionID, g.Outcome, g.Ticks, g.RoomsCleaned)
	if s.store == nil {
		return nil
	}

	err := s.store.RecordResult(ctx, storage.Result{
		Username:     s.username,
		SessionID:    g.SessionID,
		TimeTaken:    g.Elapsed(),
		RoomsCleaned: g.RoomsCleaned,
		Outcome:      g.Outcome.String(),
	})
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}

	rooms, err := s.layout.Build()
	if err != nil {
		return err
	}
	if err := s.store.SaveRooms(ctx, rooms); err != nil {
		return fmt.Errorf("reset rooms: %w", err)
	}
	if err := s.store.SaveAgent(ctx, s.freshAgent(rooms)); err != nil {
		return fmt.Errorf("reset agent: %w", err)
	}
	if err := s.store.SavePlayerRoom(ctx, s.username, s.cfg.Win.StartRoom); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("reset player room: %w", err)
	}
	return nil
}

func (s *Session) freshAgent(rooms []*world.Room) *agent.Agent {
	a := agent.New(rooms[s.rng.Intn(len(rooms))].Name, s.rng)
	a.WaitThreshold = s.cfg.Agent.WaitThreshold
	return a
}

func (s *Session) record(intent engineinput.Intent) error {
	if s.journal == nil {
		return nil
	}
	g := s.Game
	return s.journal.Write(journal.Entry{
		SessionID:   g.SessionID,
		Tick:        g.Ticks,
		Action:      engineinput.ActionName(intent.Action),
		PlayerRoom:  g.PlayerRoom,
		AgentRoom:   g.Agent.Room,
		AgentState:  g.Agent.State().String(),
		AgentTarget: g.Agent.Target,
		WaitCounter: g.Agent.WaitCounter,
		HintsShown:  len(g.Hints),
		Messages:    append([]string(nil), g.Messages...),
		Outcome:     g.Outcome.String(),
	})
}

// JournalPath returns the journal file, or "" when journaling is off.
func (s *Session) JournalPath() string {
	if s.journal == nil {
		return ""
	}
	return s.journal.Path()
}

// Summary writes the final score and the leaderboard of a decided game.
func (s *Session) Summary(ctx context.Context, w io.Writer) error {
	g := s.Game
	if !g.Finished() || g.Quit {
		return nil
	}

	fmt.Fprintln(w, messages.Getf("FINAL_SCORE", g.RoomsCleaned, g.Elapsed().Round(time.Second)))
	if s.store == nil {
		return nil
	}
	results, err := s.store.TopResults(ctx, leaderboardSize)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}
	fmt.Fprintln(w, messages.Get("LEADERBOARD"))
	for i, r := range results {
		fmt.Fprintln(w, messages.Getf("LEADERBOARD_ROW", i+1, r.Username, r.Outcome, r.RoomsCleaned, r.TimeTaken.Round(time.Second)))
	}
	return nil
}

// Close flushes the journal and closes the store. It is safe to call twice.
func (s *Session) Close() error {
	var errs []error
	if s.journal != nil {
		errs = append(errs, s.journal.Close())
		s.journal = nil
	}
	if s.store != nil {
		errs = append(errs, s.store.Close())
		s.store = nil
	}
	return errors.Join(errs...)
}
