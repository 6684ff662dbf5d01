package ledger

import (
	"strings"
	"sync"

	"github.com/budget-tracker/backend/pkg/storage"
)

// Registry holds one Store per identity, all backed by the same Backend.
type Registry struct {
	mu      sync.Mutex
	backend storage.Backend
	opts    []Option
	stores  map[string]*Store
}

// NewRegistry returns a Registry whose stores are created with opts.
func NewRegistry(backend storage.Backend, opts ...Option) *Registry {
	return &Registry{
		backend: backend,
		opts:    opts,
		stores:  make(map[string]*Store),
	}
}

// Open returns the Store for identity, loading it on first use.
func (r *Registry) Open(identity string) *Store {
	identity = normalizeIdentity(identity)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[identity]; ok {
		return s
	}

	s := New(storage.Scoped(r.backend, identity), r.opts...)
	r.stores[identity] = s
	return s
}

// Restore replaces the Store for identity with one holding snapshot. If
// persisting fails, the restored Store is still used and the error returned.
func (r *Registry) Restore(identity string, snapshot Snapshot) (*Store, error) {
	identity = normalizeIdentity(identity)

	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := Restore(storage.Scoped(r.backend, identity), snapshot, r.opts...)
	if s == nil {
		return nil, err
	}

	r.stores[identity] = s
	return s, err
}

// Close drops the Store for identity. The next Open loads it again from
// storage.
func (r *Registry) Close(identity string) {
	identity = normalizeIdentity(identity)

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.stores, identity)
}

// Len returns the number of open stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.stores)
}

func normalizeIdentity(identity string) string {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return storage.Anonymous
	}

	return identity
}
