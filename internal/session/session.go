// Package session drives a practice session: group selection during setup,
// then a round of shuffled questions with scoring and pool controls.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shellingo/shellingo/internal/group"
	"github.com/shellingo/shellingo/internal/practice"
	"github.com/shellingo/shellingo/internal/question"
)

var (
	// ErrExit asks the host to shut down. It is not a failure.
	ErrExit = errors.New("exit requested")

	// ErrActionNotAllowed is returned when an action does not apply to the
	// current phase. Nothing is changed.
	ErrActionNotAllowed = errors.New("action not allowed")

	// ErrNoQuestions is returned when practice is started without any active
	// question.
	ErrNoQuestions = errors.New("no active questions")
)

// Options configures a Session.
type Options struct {
	// Catalog holds the groups discovered at startup.
	Catalog *group.Catalog

	// Rand drives every shuffle. Defaults to practice.NewSource(0).
	Rand *rand.Rand

	// Loader loads questions when a group is activated. Defaults to a
	// group.RegistryLoader over a fresh registry.
	Loader group.Loader

	// Logger receives session events. Nil discards them.
	Logger *zerolog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Session is the single-threaded state behind the UI.
type Session struct {
	catalog    *group.Catalog
	loader     group.Loader
	rng        *rand.Rand
	log        zerolog.Logger
	phase      Phase
	round      *practice.Round
	practiceID string
	startedAt  time.Time
	now        func() time.Time
}

// New creates a session in PhaseSetup.
func New(opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = practice.NewSource(0)
	}
	loader := opts.Loader
	if loader == nil {
		loader = group.NewRegistryLoader(question.NewRegistry())
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = group.Discover(nil)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		catalog: catalog,
		loader:  loader,
		rng:     rng,
		log:     log,
		phase:   PhaseSetup,
		now:     now,
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Catalog returns the groups of this session.
func (s *Session) Catalog() *group.Catalog { return s.catalog }

// Groups returns the groups in sorted name order; index i matches
// ToggleGroup(ctx, i).
func (s *Session) Groups() []*group.Group { return s.catalog.Groups() }

// Stats summarizes the current round. See BuildSummary.
func (s *Session) Stats() Summary { return BuildSummary(s) }

// PracticeID identifies the current practice run; empty during setup.
func (s *Session) PracticeID() string { return s.practiceID }

// ToggleGroup flips the group at index in sorted order. Stale indices are
// ignored and report false.
func (s *Session) ToggleGroup(ctx context.Context, index int) (bool, error) {
	if s.phase != PhaseSetup {
		return false, fmt.Errorf("toggle group in %s: %w", s.phase, ErrActionNotAllowed)
	}
	ok := s.catalog.Toggle(ctx, index, s.loader)
	if ok {
		name, _ := s.catalog.NameAt(index)
		g, _ := s.catalog.Get(name)
		s.log.Debug().
			Str("group", name).
			Bool("active", g.Active).
			Int("questions", len(g.Questions)).
			Msg("group toggled")
	}
	return ok, nil
}

// Apply performs action. ActionExit always yields ErrExit; actions the
// current phase does not accept yield ErrActionNotAllowed.
func (s *Session) Apply(action Action) error {
	next, ok := Allowed(s.phase, action)
	if !ok {
		return fmt.Errorf("%s in %s: %w", action, s.phase, ErrActionNotAllowed)
	}

	switch action {
	case ActionExit:
		return ErrExit
	case ActionStartPractice:
		if err := s.startPractice(); err != nil {
			return err
		}
	case ActionEndPractice:
		s.log.Info().Str("practice_id", s.practiceID).Msg("practice ended")
		s.round = nil
		s.practiceID = ""
	case ActionResetStats:
		active := s.catalog.ActiveQuestions()
		for _, q := range active {
			q.ResetRoundStats()
		}
		s.round.Reset(active)
	case ActionTryAll:
		s.round.Reset(s.catalog.ActiveQuestions())
	case ActionTryHardest5:
		s.round.Reset(practice.Hardest(s.round.Questions(), 5))
	case ActionTryHardest10:
		s.round.Reset(practice.Hardest(s.round.Questions(), 10))
	case ActionNextQuestion:
		s.round.Next()
	}

	s.phase = next
	if action != ActionNextQuestion {
		s.log.Debug().Stringer("action", action).Stringer("phase", s.phase).Msg("action applied")
	}
	return nil
}

func (s *Session) startPractice() error {
	active := s.catalog.ActiveQuestions()
	if len(active) == 0 {
		return ErrNoQuestions
	}
	s.round = practice.NewRound(s.rng, active)
	s.practiceID = uuid.New().String()
	s.startedAt = s.now()
	s.log.Info().
		Str("practice_id", s.practiceID).
		Int("questions", len(active)).
		Msg("practice started")
	return nil
}

// Current returns the question being asked.
func (s *Session) Current() (*question.Question, bool) {
	if s.phase != PhasePractice || s.round == nil {
		return nil, false
	}
	return s.round.Current()
}

// Submit checks attempt against the current question and scores it.
func (s *Session) Submit(attempt string) (bool, error) {
	q, err := s.current("submit")
	if err != nil {
		return false, err
	}
	ok := practice.ValidateAttempt(attempt, q)
	s.log.Debug().Str("question", q.Text).Bool("correct", ok).Msg("attempt checked")
	return ok, nil
}

// Clue reveals a masked form of the answers at a penalty.
func (s *Session) Clue() (string, error) {
	q, err := s.current("clue")
	if err != nil {
		return "", err
	}
	return practice.RevealClue(q), nil
}

// Reveal shows the answers at a penalty.
func (s *Session) Reveal() (string, error) {
	q, err := s.current("reveal")
	if err != nil {
		return "", err
	}
	return practice.RevealAnswer(q), nil
}

func (s *Session) current(op string) (*question.Question, error) {
	q, ok := s.Current()
	if !ok {
		return nil, fmt.Errorf("%s in %s: %w", op, s.phase, ErrActionNotAllowed)
	}
	return q, nil
}
