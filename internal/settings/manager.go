package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"phonicsboard/internal/alphabet"
	"phonicsboard/internal/kvstore"
)

// Manager owns the current settings of one variant. The board and the
// settings panel read through Current and change values only through
// Update, which persists every change.
type Manager struct {
	store   kvstore.Store
	variant Variant
	logger  *slog.Logger

	// saveMu orders writes to the store the same way as the changes to
	// current. It is always taken before mu.
	saveMu  sync.Mutex
	mu      sync.RWMutex
	current Settings
}

// NewManager creates a manager holding the defaults until Load is called.
func NewManager(store kvstore.Store, variant Variant, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		store:   store,
		variant: variant,
		logger:  logger,
		current: Defaults(),
	}
}

// Variant returns the board variant the manager persists for.
func (m *Manager) Variant() Variant { return m.variant }

// Load reads the stored record. A missing record keeps the defaults; an
// unreadable one is logged and also falls back to the defaults.
func (m *Manager) Load(ctx context.Context) (Settings, error) {
	data, ok, err := m.store.Get(ctx, m.variant.Key())
	if err != nil {
		return m.Current(), fmt.Errorf("load settings: %w", err)
	}
	s := Defaults()
	if ok {
		decoded, derr := Decode(data)
		if derr != nil {
			m.logger.Warn("stored settings unreadable, using defaults", "key", m.variant.Key(), "error", derr)
		} else {
			s = decoded
		}
	}
	m.mu.Lock()
	m.current = s
	m.mu.Unlock()
	return s.Clone(), nil
}

// Current returns a copy of the settings in effect.
func (m *Manager) Current() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Clone()
}

// Update applies fn to the settings and persists the result. Concurrent
// updates are persisted in the order they were applied, so the stored
// record always matches the last change. The in-memory value changes even
// when persisting fails; the failure is logged and returned.
func (m *Manager) Update(ctx context.Context, fn func(*Settings)) (Settings, error) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.mu.Lock()
	next := m.current.Clone()
	fn(&next)
	m.current = next
	snapshot := next.Clone()
	m.mu.Unlock()

	if err := m.save(ctx, snapshot); err != nil {
		m.logger.Error("failed to save settings", "key", m.variant.Key(), "error", err)
		return snapshot, err
	}
	return snapshot, nil
}

func (m *Manager) save(ctx context.Context, s Settings) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, m.variant.Key(), data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Toggle flips one boolean field.
func (m *Manager) Toggle(ctx context.Context, f Field) (Settings, error) {
	return m.Update(ctx, func(s *Settings) {
		if p := f.ptr(s); p != nil {
			*p = !*p
		}
	})
}

// ToggleLetter flips the visibility of one letter. Unknown letters are
// rejected without touching the store.
func (m *Manager) ToggleLetter(ctx context.Context, letter string) (Settings, error) {
	entry, ok := alphabet.Lookup(letter)
	if !ok {
		return m.Current(), fmt.Errorf("unknown letter %q", letter)
	}
	key := entry.Letter()
	return m.Update(ctx, func(s *Settings) {
		s.EnabledLetters[key] = !s.Enabled(key)
	})
}

// Reset restores and persists the defaults.
func (m *Manager) Reset(ctx context.Context) (Settings, error) {
	return m.Update(ctx, func(s *Settings) { *s = Defaults() })
}

// VisibleEntries returns the enabled catalog entries in A→Z order.
func (m *Manager) VisibleEntries(catalog []alphabet.Entry) []alphabet.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.VisibleEntries(catalog)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}
