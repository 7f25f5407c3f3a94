// Microscopium Browser - Screening Data Navigation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/microscopium-browser

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/microscopium-browser/internal/cache"
	"github.com/tomtom215/microscopium-browser/internal/config"
	"github.com/tomtom215/microscopium-browser/internal/filter"
	"github.com/tomtom215/microscopium-browser/internal/logging"
	"github.com/tomtom215/microscopium-browser/internal/metrics"
	"github.com/tomtom215/microscopium-browser/internal/models"
	"github.com/tomtom215/microscopium-browser/internal/samples"
)

// Event types broadcast to the subscribers of a session.
const (
	EventSelection      = "selection"
	EventNavigation     = "navigation"
	EventFilter         = "filter"
	EventView           = "view"
	EventScreenSwitched = "screen_switched"
	EventSessionClosed  = "session_closed"
)

// Broadcaster delivers session events to connected clients.
type Broadcaster interface {
	BroadcastToSession(sessionID, msgType string, data interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastToSession(string, string, interface{}) {}

// Service owns the live browsing sessions.
type Service struct {
	data        Dataset
	store       Store
	live        *cache.Cache[*Session]
	broadcaster Broadcaster

	ttl         time.Duration
	maxSessions int
	width       float64
	height      float64
	pickRadius  float64

	now   func() time.Time
	newID func() string

	// restoreMu serialises restores so a session is rebuilt only once.
	restoreMu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithBroadcaster sets the event sink. Events are dropped without one.
func WithBroadcaster(b Broadcaster) Option {
	return func(s *Service) { s.broadcaster = b }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// NewService creates a session service reading screens from data and
// persisting snapshots to store.
func NewService(data Dataset, store Store, sessCfg config.SessionConfig, plotCfg config.PlotConfig, opts ...Option) *Service {
	s := &Service{
		data:        data,
		store:       store,
		broadcaster: nopBroadcaster{},
		ttl:         sessCfg.TTL,
		maxSessions: sessCfg.MaxSessions,
		width:       float64(plotCfg.Width),
		height:      float64(plotCfg.Height),
		pickRadius:  plotCfg.PickRadius,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.live = cache.New[*Session](s.ttl,
		cache.WithClock[*Session](func() time.Time { return s.now() }),
		cache.WithEvictCallback[*Session](func(id string, _ *Session) {
			metrics.SessionsExpired.Inc()
			logging.Debug().Str("session_id", id).Msg("Live session expired")
		}),
	)
	return s
}

// ListScreens returns the screens a session can be opened on.
func (s *Service) ListScreens(ctx context.Context) ([]models.Screen, error) {
	screens, err := s.data.ListScreens(ctx)
	if err != nil {
		return nil, fmt.Errorf("list screens: %w", err)
	}
	return screens, nil
}

// Open starts a session on screenID.
func (s *Service) Open(ctx context.Context, screenID string) (state State, err error) {
	defer func() { metrics.RecordSessionOperation("open", err) }()

	if s.maxSessions > 0 && s.live.Len() >= s.maxSessions {
		s.live.Cleanup()
		if s.live.Len() >= s.maxSessions {
			return State{}, ErrTooManySessions
		}
	}

	screen, list, err := s.loadScreen(ctx, screenID)
	if err != nil {
		return State{}, err
	}

	sess := newSession(s.newID(), *screen, list, s.width, s.height, s.now())
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.persist(ctx, sess); err != nil {
		return State{}, err
	}
	s.live.Set(sess.id, sess)
	metrics.SessionsActive.Set(float64(s.live.Len()))

	logging.Ctx(logging.ContextWithSessionID(ctx, sess.id)).Info().
		Str("screen_id", screenID).Int("samples", len(list)).Msg("Session opened")
	return sess.state(), nil
}

// Get returns the state of a session.
func (s *Service) Get(ctx context.Context, id string) (State, error) {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return State{}, err
	}
	defer sess.mu.Unlock()
	return sess.state(), nil
}

// Selection is the result of selecting a sample.
type Selection struct {
	Sample     models.Sample  `json:"sample"`
	Neighbours []string       `json:"neighbours"`
	History    HistoryState   `json:"history"`
	Layers     samples.Layers `json:"layers"`
}

// Select makes sampleID the active sample and appends it to the history.
func (s *Service) Select(ctx context.Context, id, sampleID string) (sel Selection, err error) {
	defer func() { metrics.RecordSessionOperation("select", err) }()

	err = s.mutate(ctx, id, func(sess *Session) error {
		i := sess.manager.IndexOf(sampleID)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrSampleNotFound, sampleID)
		}
		sess.history.Add(sampleID)
		neighbours := sess.selectIndex(i)
		if neighbours == nil {
			neighbours = []string{}
		}
		sel = Selection{
			Sample:     sess.manager.Sample(i),
			Neighbours: neighbours,
			History:    sess.state().History,
			Layers:     sess.manager.Layers(),
		}
		return nil
	})
	if err != nil {
		return Selection{}, err
	}
	s.broadcaster.BroadcastToSession(id, EventSelection, sel)
	return sel, nil
}

// Navigation is the result of moving through the history. Moved is false
// when the history was already at its boundary; nothing changes then.
type Navigation struct {
	Direction string         `json:"direction"`
	Moved     bool           `json:"moved"`
	Current   string         `json:"current,omitempty"`
	History   HistoryState   `json:"history"`
	Layers    samples.Layers `json:"layers"`
}

// Back moves to the previous selection.
func (s *Service) Back(ctx context.Context, id string) (Navigation, error) {
	return s.navigate(ctx, id, "back")
}

// Forward moves to the next selection.
func (s *Service) Forward(ctx context.Context, id string) (Navigation, error) {
	return s.navigate(ctx, id, "forward")
}

func (s *Service) navigate(ctx context.Context, id, direction string) (nav Navigation, err error) {
	defer func() { metrics.RecordSessionOperation(direction, err) }()

	err = s.mutate(ctx, id, func(sess *Session) error {
		var sampleID string
		var moved bool
		if direction == "back" {
			sampleID, moved = sess.history.Back()
		} else {
			sampleID, moved = sess.history.Forward()
		}
		if moved {
			sess.showCurrent()
		}
		nav = Navigation{
			Direction: direction,
			Moved:     moved,
			Current:   sampleID,
			History:   sess.state().History,
			Layers:    sess.manager.Layers(),
		}
		if !moved {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return Navigation{}, err
	}
	metrics.RecordNavigation(direction, nav.Moved)
	if nav.Moved {
		s.broadcaster.BroadcastToSession(id, EventNavigation, nav)
	}
	return nav, nil
}

// SwitchScreen loads another screen into the session. The history and the
// filter start over.
func (s *Service) SwitchScreen(ctx context.Context, id, screenID string) (state State, err error) {
	defer func() { metrics.RecordSessionOperation("switch_screen", err) }()

	if _, err = s.session(ctx, id); err != nil {
		return State{}, err
	}
	screen, list, err := s.loadScreen(ctx, screenID)
	if err != nil {
		return State{}, err
	}

	err = s.mutate(ctx, id, func(sess *Session) error {
		view := sess.manager.View()
		sess.load(*screen, list)
		sess.setView(view)
		state = sess.state()
		return nil
	})
	if err != nil {
		return State{}, err
	}
	s.broadcaster.BroadcastToSession(id, EventScreenSwitched, state)
	return state, nil
}

// FilterResult is the result of applying a filter.
type FilterResult struct {
	Filter      filter.Query   `json:"filter"`
	Active      bool           `json:"active"`
	FilteredOut int            `json:"filtered_out"`
	Layers      samples.Layers `json:"layers"`
}

// ApplyFilter replaces the session filter. Samples failing it are marked
// FilteredOut and every other sample loses that status.
func (s *Service) ApplyFilter(ctx context.Context, id string, q filter.Query) (res FilterResult, err error) {
	defer func() { metrics.RecordSessionOperation("filter", err) }()

	err = s.mutate(ctx, id, func(sess *Session) error {
		n := sess.applyQuery(q)
		res = FilterResult{
			Filter:      sess.query,
			Active:      sess.query.Active(sess.options),
			FilteredOut: n,
			Layers:      sess.manager.Layers(),
		}
		return nil
	})
	if err != nil {
		return FilterResult{}, err
	}
	s.broadcaster.BroadcastToSession(id, EventFilter, res)
	return res, nil
}

// FilterChoices lists the values a filter can be built from.
type FilterChoices struct {
	Options filter.Options `json:"options"`
	// Matches are the unselected genes matching the search pattern.
	Matches  []string     `json:"matches"`
	Selected []string     `json:"selected"`
	Current  filter.Query `json:"current"`
}

// FilterOptions returns the filter values of the session's screen. A
// non-empty genePattern narrows the unselected genes.
func (s *Service) FilterOptions(ctx context.Context, id, genePattern string) (FilterChoices, error) {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return FilterChoices{}, err
	}
	defer sess.mu.Unlock()

	matches := sess.genes.Available()
	if genePattern != "" {
		matches = filter.GeneSearch(matches, genePattern)
	}
	return FilterChoices{
		Options:  sess.options,
		Matches:  matches,
		Selected: sess.genes.Selected(),
		Current:  sess.query,
	}, nil
}

// SetView switches the embedding and returns the redrawn scene.
func (s *Service) SetView(ctx context.Context, id, view string) (scene Scene, err error) {
	defer func() { metrics.RecordSessionOperation("view", err) }()

	v, err := models.ParseView(view)
	if err != nil {
		return Scene{}, fmt.Errorf("%w: %q", ErrInvalidView, view)
	}
	err = s.mutate(ctx, id, func(sess *Session) error {
		sess.setView(v)
		scene = sess.scene()
		return nil
	})
	if err != nil {
		return Scene{}, err
	}
	s.broadcaster.BroadcastToSession(id, EventView, scene)
	return scene, nil
}

// Pick is the sample under a pixel position, if any.
type Pick struct {
	Found    bool    `json:"found"`
	SampleID string  `json:"sample_id,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// Pick finds the sample nearest to the pixel (x, y) within the pick radius.
func (s *Service) Pick(ctx context.Context, id string, x, y float64) (Pick, error) {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return Pick{}, err
	}
	defer sess.mu.Unlock()

	p := Pick{X: x, Y: y}
	if i := sess.manager.FindNearest(x, y, s.pickRadius); i >= 0 {
		p.Found = true
		p.SampleID = sess.manager.Sample(i).ID
	}
	return p, nil
}

// Scene returns the draw-ready plot of a session.
func (s *Service) Scene(ctx context.Context, id string) (Scene, error) {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return Scene{}, err
	}
	defer sess.mu.Unlock()
	return sess.scene(), nil
}

// Close ends a session and removes its snapshot.
func (s *Service) Close(ctx context.Context, id string) (err error) {
	defer func() { metrics.RecordSessionOperation("close", err) }()

	s.restoreMu.Lock()
	defer s.restoreMu.Unlock()

	if sess, ok := s.live.Get(id); ok {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		sess.closed = true
	}
	live := s.live.Delete(id)
	stored := true
	if !live {
		if _, err := s.store.Load(ctx, id); err != nil {
			if !errors.Is(err, ErrSessionNotFound) {
				return fmt.Errorf("load session: %w", err)
			}
			stored = false
		}
	}
	if !live && !stored {
		return ErrSessionNotFound
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	metrics.SessionsActive.Set(float64(s.live.Len()))
	s.broadcaster.BroadcastToSession(id, EventSessionClosed, map[string]string{"id": id})

	logging.Ctx(logging.ContextWithSessionID(ctx, id)).Info().Msg("Session closed")
	return nil
}

// Cleanup drops expired live sessions and snapshots. It returns the number
// of snapshots removed from the store.
func (s *Service) Cleanup(ctx context.Context) (int, error) {
	evicted := s.live.Cleanup()
	metrics.SessionsActive.Set(float64(s.live.Len()))

	removed, err := s.store.DeleteExpired(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("delete expired snapshots: %w", err)
	}
	if evicted > 0 || removed > 0 {
		logging.Info().Int("evicted", evicted).Int("removed", removed).Msg("Expired sessions cleaned up")
	}
	return removed, nil
}

// ActiveSessions returns the number of live sessions.
func (s *Service) ActiveSessions() int {
	return s.live.Len()
}

// errUnchanged ends a mutation without persisting it.
var errUnchanged = errors.New("unchanged")

// mutate runs fn under the session lock and persists the result.
func (s *Service) mutate(ctx context.Context, id string, fn func(*Session) error) error {
	sess, err := s.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	if err := fn(sess); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	sess.updatedAt = s.now()
	return s.persist(ctx, sess)
}

// acquire returns the session for id with its lock held. A session closed
// while the caller waited for the lock is reported as not found.
func (s *Service) acquire(ctx context.Context, id string) (*Session, error) {
	sess, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	if sess.closed {
		sess.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) persist(ctx context.Context, sess *Session) error {
	if err := s.store.Save(ctx, sess.snapshot()); err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("session_id", sess.id).Msg("Failed to save session snapshot")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// session returns the live session for id, restoring it from the store
// when it is not cached.
func (s *Service) session(ctx context.Context, id string) (*Session, error) {
	if sess, ok := s.live.Get(id); ok {
		return sess, nil
	}

	s.restoreMu.Lock()
	defer s.restoreMu.Unlock()

	if sess, ok := s.live.Get(id); ok {
		return sess, nil
	}

	snap, err := s.store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s.ttl > 0 && snap.UpdatedAt.Before(s.now().Add(-s.ttl)) {
		if err := s.store.Delete(ctx, id); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("session_id", id).Msg("Failed to delete expired snapshot")
		}
		return nil, ErrSessionNotFound
	}

	screen, list, err := s.loadScreen(ctx, snap.ScreenID)
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}
	sess := newSession(id, *screen, list, s.width, s.height, s.now())
	if err := sess.restore(snap); err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}

	s.live.Set(id, sess)
	metrics.SessionRestores.Inc()
	metrics.SessionsActive.Set(float64(s.live.Len()))
	logging.Ctx(logging.ContextWithSessionID(ctx, id)).Debug().Msg("Session restored from store")
	return sess, nil
}

func (s *Service) loadScreen(ctx context.Context, screenID string) (*models.Screen, []models.Sample, error) {
	screen, err := s.data.GetScreen(ctx, screenID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrScreenNotFound, screenID)
		}
		return nil, nil, fmt.Errorf("get screen: %w", err)
	}
	list, err := s.data.SamplesForScreen(ctx, screenID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrScreenNotFound, screenID)
		}
		return nil, nil, fmt.Errorf("load samples: %w", err)
	}
	return screen, list, nil
}
