// Package session persists play-throughs so a game can be resumed later.
//
// A session records the puzzle parameters and how far along the optimal
// solution the player is. The game state itself is never stored: the
// engine is deterministic, so the state at move index i is reconstructed
// by replaying the first i solver moves from the initial arrangement.
//
// Backends:
//   - memory: in-process storage for tests and the API server
//   - file: per-user config directory for CLI usage
//   - mongo: shared storage for multi-instance deployments
//
// # Usage
//
//	store, err := session.NewFileStore("") // ~/.config/hanoitower/sessions
//	if err != nil {
//	    return err
//	}
//	sess := session.New(5)
//	sess.MoveIndex = 12
//	if err := store.Set(ctx, sess); err != nil {
//	    return err
//	}
//
//	// Later:
//	sess, err = store.Get(ctx, sess.ID)
//	state, err := sess.State()
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/hanoitower/pkg/errors"
	"github.com/matzehuels/hanoitower/pkg/hanoi"
)

// Session is a resumable play-through of the puzzle.
type Session struct {
	ID        string    `json:"id" bson:"_id"`
	Disks     int       `json:"disks" bson:"disks"`
	MoveIndex int       `json:"move_index" bson:"move_index"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// New creates a session for an n-disk game at move zero with a fresh UUID.
func New(n int) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Disks:     n,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks the session invariants: a positive disk count and a move
// index within 0..2^n-1.
func (s *Session) Validate() error {
	if s.Disks <= 0 {
		return errors.New(errors.ErrCodeInvalidDiskCount, "session disk count must be positive, got %d", s.Disks)
	}
	if s.MoveIndex < 0 || s.MoveIndex > hanoi.MoveCount(s.Disks) {
		return errors.New(errors.ErrCodeInvalidConfig, "move index %d out of range for %d disks", s.MoveIndex, s.Disks)
	}
	return nil
}

// State reconstructs the game state at the session's move index by
// replaying the canonical solution from the initial arrangement.
func (s *Session) State() (hanoi.GameState, error) {
	if err := s.Validate(); err != nil {
		return hanoi.GameState{}, err
	}

	state, err := hanoi.InitialState(s.Disks)
	if err != nil {
		return hanoi.GameState{}, err
	}
	moves, err := hanoi.Solve(s.Disks, hanoi.PegA, hanoi.PegC, hanoi.PegB)
	if err != nil {
		return hanoi.GameState{}, err
	}
	for _, m := range moves[:s.MoveIndex] {
		state, err = hanoi.ApplyMove(state, m)
		if err != nil {
			return hanoi.GameState{}, err
		}
	}
	return state, nil
}

// Finished reports whether the session has played the full solution.
func (s *Session) Finished() bool {
	return s.MoveIndex >= hanoi.MoveCount(s.Disks)
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID. Returns an error with code
	// SESSION_NOT_FOUND if it does not exist.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session, stamping UpdatedAt.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored sessions, newest first.
	List(ctx context.Context) ([]*Session, error)

	// Close releases backend resources.
	Close() error
}

// notFound builds the standard missing-session error.
func notFound(id string) error {
	return errors.New(errors.ErrCodeSessionNotFound, "session %s not found", id)
}
