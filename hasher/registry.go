package hasher

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownHasher is returned when a name has no registered Hash64.
var ErrUnknownHasher = errors.New("hasher: no hash function registered under that name")

var (
	regMu    sync.RWMutex
	registry = map[string]Hash64{}
)

// Register makes fn available under name, replacing any previous
// registration. The murmur and xxh3 functions are registered at package
// initialization; callers may add their own.
func Register(name string, fn Hash64) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[name] = fn
}

// Lookup returns the Hash64 registered under name.
func Lookup(name string) (Hash64, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
	}
	return fn, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New returns an empty generator bound to the hash function registered
// under name.
func New(name string) (*Generator, error) {
	fn, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewGenerator(name, fn), nil
}
