package conversation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"tooltips/core/loader"
	"tooltips/core/script"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrClosed is returned when a session is started after shutdown began.
	ErrClosed = errors.New("conversation manager closed")
	// ErrNoSession is returned when the player has no open conversation.
	ErrNoSession = errors.New("no open conversation")
	// ErrInvalidOption is returned when an option index is out of range.
	ErrInvalidOption = errors.New("invalid conversation option")
)

// Session is an open conversation of one player.
type Session struct {
	ID       uuid.UUID
	Player   uuid.UUID
	NPC      string
	Options  []string
	Selected int
	Started  time.Time
}

// Manager tracks the open conversations rendered through tooltips.
// It is the only stateful adapter of the host and must be ended at shutdown.
type Manager struct {
	name   string
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	closed   bool
}

// NewManager creates a manager registering its conversation IO under name.
func NewManager(name string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		name:     name,
		logger:   logger,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Name returns the conversation IO name.
func (m *Manager) Name() string {
	return m.name
}

// Start opens a conversation for player, ending any conversation already open for them.
func (m *Manager) Start(player uuid.UUID, npc string, options []string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Session{}, ErrClosed
	}

	s := &Session{
		ID:      uuid.New(),
		Player:  player,
		NPC:     npc,
		Options: slices.Clone(options),
		Started: time.Now(),
	}
	m.sessions[player] = s

	m.logger.Debug("Conversation started",
		zap.Stringer("session", s.ID),
		zap.Stringer("player", player),
		zap.String("npc", npc),
	)
	return s.copy(), nil
}

// Session returns the open conversation of player.
func (m *Manager) Session(player uuid.UUID) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[player]
	if !ok {
		return Session{}, false
	}
	return s.copy(), true
}

// Select highlights the option at index (zero based).
func (m *Manager) Select(player uuid.UUID, index int) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[player]
	if !ok {
		return Session{}, ErrNoSession
	}
	if index < 0 || index >= len(s.Options) {
		return Session{}, fmt.Errorf("%w: %d of %d", ErrInvalidOption, index, len(s.Options))
	}
	s.Selected = index
	return s.copy(), nil
}

// Next highlights the following option, wrapping around after the last one.
func (m *Manager) Next(player uuid.UUID) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[player]
	if !ok {
		return Session{}, ErrNoSession
	}
	if len(s.Options) > 0 {
		s.Selected = (s.Selected + 1) % len(s.Options)
	}
	return s.copy(), nil
}

// End closes the conversation of player. It reports whether one was open.
func (m *Manager) End(player uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[player]; !ok {
		return false
	}
	delete(m.sessions, player)
	return true
}

// EndAll closes every open conversation and rejects new ones.
// It returns the number of conversations ended.
func (m *Manager) EndAll() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	n := len(m.sessions)
	clear(m.sessions)

	if n > 0 {
		m.logger.Info("Ended open conversations", zap.Int("count", n))
	}
	return n
}

// Open returns the number of open conversations.
func (m *Manager) Open() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (s *Session) copy() Session {
	c := *s
	c.Options = slices.Clone(s.Options)
	return c
}

// Install registers the conversation actions and condition.
func (m *Manager) Install(ctx context.Context, env *loader.Env) error {
	env.Scripts.RegisterAction("selectoption", m.selectOptionAction)
	env.Scripts.RegisterAction("nextoption", m.nextOptionAction)
	env.Scripts.RegisterAction("endconversation", m.endConversationAction)
	env.Scripts.RegisterCondition("inconversation", func(ctx context.Context, target script.Target) bool {
		_, ok := m.Session(target.Player)
		return ok
	})

	env.Logger.Info("Conversation IO registered", zap.String("io", m.name))
	return nil
}

// Shutdown ends every open conversation.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.EndAll()
	return nil
}

// selectOptionAction takes a one based option number, as typed in presets.
func (m *Manager) selectOptionAction(ctx context.Context, target script.Target, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("selectoption expects 1 argument, got %d", len(args))
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOption, args[0])
	}
	_, err = m.Select(target.Player, n-1)
	return err
}

func (m *Manager) nextOptionAction(ctx context.Context, target script.Target, args []string) error {
	_, err := m.Next(target.Player)
	return err
}

func (m *Manager) endConversationAction(ctx context.Context, target script.Target, args []string) error {
	if !m.End(target.Player) {
		return ErrNoSession
	}
	return nil
}
