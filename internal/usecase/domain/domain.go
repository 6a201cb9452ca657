// Package domain implements the optimistic synchronization engine behind
// the admin console: per-entity stores, server reconciliation, snapshot
// rollback and the cross-store refresh path.
package domain

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"unicode"

	"github.com/samibentaiba/itc-hub-sub000/internal/entities"
	"github.com/samibentaiba/itc-hub-sub000/internal/notify"
	"github.com/samibentaiba/itc-hub-sub000/internal/store"

	"go.uber.org/zap"
)

// Transport issues JSON calls against the admin API. A nil payload with a
// nil error is a valid no-content success.
type Transport interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

// Usecase owns the entity stores and runs every mutation against the
// server. Errors never escape its boundary: callers observe a boolean and
// the notification side channel only.
type Usecase struct {
	log    *zap.SugaredLogger
	api    Transport
	notify notify.Notifier

	users       *store.Store[entities.User]
	teams       *store.Store[entities.Team]
	departments *store.Store[entities.Department]
	events      *store.Store[entities.Event]
	pending     *store.Store[entities.PendingEvent]

	tokens *tokenSet
	locks  *keyedLocks

	// serializes whole-store swaps against each other
	refreshMu sync.Mutex
}

// New constructs the engine with its dependencies. Each call owns fresh,
// independent stores; there is no process-wide singleton.
func New(log *zap.SugaredLogger, api Transport, n notify.Notifier) *Usecase {
	return &Usecase{
		log:         log.Named("sync"),
		api:         api,
		notify:      n,
		users:       store.New[entities.User](),
		teams:       store.New[entities.Team](),
		departments: store.New[entities.Department](),
		events:      store.New[entities.Event](),
		pending:     store.New[entities.PendingEvent](),
		tokens:      newTokenSet(),
		locks:       newKeyedLocks(),
	}
}

// Loading reports whether the given advisory token is in flight, so the UI
// can disable the one affected control.
func (u *Usecase) Loading(token string) bool {
	return u.tokens.has(token)
}

// failed logs the error, surfaces a failure notification and returns false.
func (u *Usecase) failed(title string, err error) bool {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	u.log.Errorw("mutation failed", "title", title, "error", err)
	u.notify.Failure(title, msg)
	return false
}

// invalid surfaces a validation failure without touching loading tokens.
func (u *Usecase) invalid(title, detail string) bool {
	u.notify.Failure(title, detail)
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// tokenSet tracks in-flight loading tokens. Counted, so two concurrent
// operations sharing a token keep it active until both settle.
type tokenSet struct {
	mu     sync.Mutex
	active map[string]int
}

func newTokenSet() *tokenSet {
	return &tokenSet{active: make(map[string]int)}
}

func (t *tokenSet) begin(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active[token]++
}

func (t *tokenSet) end(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active[token] <= 1 {
		delete(t.active, token)
		return
	}
	t.active[token]--
}

func (t *tokenSet) has(token string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active[token] > 0
}

// keyedLocks serializes mutations per entity id so a racing update and
// delete on the same item cannot clobber each other's reconciliation.
// Mutations on unrelated ids still run concurrently.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for the key and returns its unlock.
func (k *keyedLocks) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
