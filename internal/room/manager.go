package room

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"judgement/internal/config"
)

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	ListRooms() []*Room
}

// Manager creates rooms on demand and drops them once they stop.
type Manager struct {
	mu     sync.Mutex
	store  Store
	cfg    config.Config
	hub    Broadcaster
	logger *zap.Logger
	seq    int64
}

func NewManager(s Store, cfg config.Config, hub Broadcaster, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: s, cfg: cfg, hub: hub, logger: logger}
}

// SetHub wires the broadcaster for rooms created from now on.
func (m *Manager) SetHub(hub Broadcaster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hub = hub
}

// BotName is the display name used when a client adds a bot without one.
func (m *Manager) BotName() string { return m.cfg.BotName }

// CreateRoom opens a room under a fresh random code.
func (m *Manager) CreateRoom() *Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	code := randCode(6)
	for {
		if _, taken := m.store.GetRoom(code); !taken {
			break
		}
		code = randCode(6)
	}
	return m.openLocked(code)
}

// GetOrCreate returns the room for code, opening it if needed. created
// reports whether this call opened it.
func (m *Manager) GetOrCreate(code string) (r *Room, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.store.GetRoom(code); ok {
		return r, false
	}
	return m.openLocked(code), true
}

func (m *Manager) openLocked(code string) *Room {
	r := New(code, Options{
		Settings: m.cfg.Settings(),
		BotDelay: m.cfg.BotDelay,
		Rand:     m.newRand(),
	}, m.hub, m.logger)
	m.store.SaveRoom(r)
	m.logger.Info("room opened", zap.String("room", code))

	go func() {
		<-r.Done()
		m.forget(r)
	}()
	return r
}

func (m *Manager) newRand() *rand.Rand {
	if m.cfg.Seed == 0 {
		return nil
	}
	m.seq++
	return rand.New(rand.NewSource(m.cfg.Seed + m.seq))
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) List() []*Room {
	return m.store.ListRooms()
}

// Remove closes the room; it leaves the store once its goroutine stops.
func (m *Manager) Remove(code string) {
	if r, ok := m.store.GetRoom(code); ok {
		r.Close()
	}
}

func (m *Manager) forget(r *Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.store.GetRoom(r.Code); ok && cur == r {
		m.store.DeleteRoom(r.Code)
		m.logger.Info("room closed", zap.String("room", r.Code))
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
