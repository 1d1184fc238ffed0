// Package propkit names the supported value domains and looks them up by
// tag, so that callers configured from text can pick a domain at runtime.
package propkit

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vitalvas/propkit/chrono"
	"github.com/vitalvas/propkit/domain"
)

var (
	ErrUnknownDomain   = errors.New("propkit: unknown domain")
	ErrDuplicateDomain = errors.New("propkit: domain already registered")
)

// Registry maps domain tags to adapters. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]domain.Adapter[any]
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]domain.Adapter[any])}
}

// Register adds a typed adapter under tag.
func Register[T any](r *Registry, tag string, a domain.Adapter[T]) error {
	return r.Register(tag, domain.Erase(a))
}

func (r *Registry) Register(tag string, a domain.Adapter[any]) error {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrUnknownDomain)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.adapters[tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDomain, tag)
	}
	r.adapters[tag] = a
	return nil
}

func (r *Registry) Lookup(tag string) (domain.Adapter[any], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.adapters[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDomain, tag)
	}
	return a, nil
}

// Lookup returns the typed adapter registered under tag.
func Lookup[T any](r *Registry, tag string) (domain.Adapter[T], error) {
	a, err := r.Lookup(tag)
	if err != nil {
		return nil, err
	}
	typed, ok := domain.Unwrap[T](a)
	if !ok {
		var zero T
		return nil, fmt.Errorf("propkit: domain %s does not hold %T values", tag, zero)
	}
	return typed, nil
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.adapters))
	for tag := range r.adapters {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of the built-in domains.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, a := range builtin() {
			if err := r.Register(a.Name(), a); err != nil {
				panic(err)
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

func builtin() []domain.Adapter[any] {
	return []domain.Adapter[any]{
		domain.Erase[chrono.OffsetDateTime](chrono.OffsetDomain{}),
		domain.Erase[chrono.LocalDateTime](chrono.DateTimeDomain{}),
		domain.Erase[chrono.LocalDate](chrono.DateDomain{}),
	}
}
