// Package storage persists the budget state as JSON values under logical keys.
//
// A Backend is a plain key-value store. A Handle binds a Backend to the
// namespace of one identity, so that the same logical key resolves to a
// different physical key for every user.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("no value stored for key")
	ErrCorrupt  = errors.New("stored value could not be decoded")
	ErrRead     = errors.New("reading from storage failed")
	ErrWrite    = errors.New("writing to storage failed")
)

// Key is a logical storage key.
type Key string

const (
	KeyMonthlyData     Key = "monthlyData"
	KeySavingsGoals    Key = "savingsGoals"
	KeyDebts           Key = "debts"
	KeyCategories      Key = "categories"
	KeyDashboardLayout Key = "dashboardLayout"
)

// Keys lists every logical key that is scoped to an identity.
var Keys = []Key{KeyMonthlyData, KeySavingsGoals, KeyDebts, KeyCategories, KeyDashboardLayout}

// Anonymous is the identity used when no user is signed in.
const Anonymous = "anonymous"

// Backend is a synchronous key-value store.
type Backend interface {
	// Get returns the value for key or ErrNotFound.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Pinger is implemented by backends that can check their connection.
type Pinger interface {
	Ping() error
}

// Ping checks the connection of backends that implement Pinger. Other
// backends are always reachable.
func Ping(backend Backend) error {
	if p, ok := backend.(Pinger); ok {
		return p.Ping()
	}

	return nil
}

// Handle reads and writes logical keys in the namespace of one identity.
type Handle struct {
	backend  Backend
	identity string
}

// Scoped returns a Handle for identity. An empty identity maps to Anonymous.
func Scoped(backend Backend, identity string) Handle {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		identity = Anonymous
	}

	return Handle{backend: backend, identity: identity}
}

// Identity returns the identity the handle is scoped to.
func (h Handle) Identity() string {
	return h.identity
}

// Path returns the physical key for a logical key.
func (h Handle) Path(key Key) string {
	return fmt.Sprintf("user_%s_%s", h.identity, key)
}

// Load decodes the value stored for key into target.
func (h Handle) Load(key Key, target any) error {
	raw, err := h.backend.Get(h.Path(key))
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRead, key, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, key, err)
	}

	return nil
}

// Save encodes value and stores it for key.
func (h Handle) Save(key Key, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, key, err)
	}

	if err := h.backend.Set(h.Path(key), raw); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, key, err)
	}

	return nil
}

// Clear removes every key of the identity.
func (h Handle) Clear() error {
	for _, key := range Keys {
		err := h.backend.Delete(h.Path(key))
		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s: %w", ErrWrite, key, err)
		}
	}

	return nil
}
