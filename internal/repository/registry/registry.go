// Package registry keeps the company records matching runs score against.
// The registry is an in-memory snapshot loaded from the dataset at startup;
// edits live for the process lifetime only.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/panel-entreprises/panelmatch"
)

var (
	// ErrNotFound signals a missing company.
	ErrNotFound = errors.New("company not found")
	// ErrAlreadyExists signals a duplicate company id.
	ErrAlreadyExists = errors.New("company already exists")
)

// Registry is a mutex-guarded in-memory company store. Records are cloned
// on the way in and out, so callers can mutate what they get back without
// racing the registry.
type Registry struct {
	mu        sync.RWMutex
	companies map[string]panelmatch.Company
	nextID    int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		companies: make(map[string]panelmatch.Company),
		nextID:    1,
	}
}

// Load replaces the registry contents with the given companies. Records
// without an id are assigned one; duplicate ids are rejected.
func (r *Registry) Load(companies []panelmatch.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fresh := make(map[string]panelmatch.Company, len(companies))
	maxSeq := 0
	for _, c := range companies {
		if c.ID == "" {
			c.ID = formatID(len(fresh) + 1)
		}
		if _, dup := fresh[c.ID]; dup {
			return fmt.Errorf("load company %s: %w", c.ID, ErrAlreadyExists)
		}
		if seq, ok := parseID(c.ID); ok && seq > maxSeq {
			maxSeq = seq
		}
		fresh[c.ID] = clone(c)
	}

	r.companies = fresh
	r.nextID = maxSeq + 1
	return nil
}

// List returns every company sorted by id.
func (r *Registry) List() []panelmatch.Company {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]panelmatch.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, clone(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the company with the given id.
func (r *Registry) Get(id string) (panelmatch.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.companies[id]
	if !ok {
		return panelmatch.Company{}, fmt.Errorf("get company %s: %w", id, ErrNotFound)
	}
	return clone(c), nil
}

// Add stores a new company. An empty id gets the next sequential one;
// a caller-provided id must not collide.
func (r *Registry) Add(company panelmatch.Company) (panelmatch.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if company.ID == "" {
		company.ID = formatID(r.nextID)
	} else if _, dup := r.companies[company.ID]; dup {
		return panelmatch.Company{}, fmt.Errorf("add company %s: %w", company.ID, ErrAlreadyExists)
	}

	if seq, ok := parseID(company.ID); ok && seq >= r.nextID {
		r.nextID = seq + 1
	}

	r.companies[company.ID] = clone(company)
	return company, nil
}

// Update replaces an existing company record, keyed by its id.
func (r *Registry) Update(company panelmatch.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[company.ID]; !ok {
		return fmt.Errorf("update company %s: %w", company.ID, ErrNotFound)
	}
	r.companies[company.ID] = clone(company)
	return nil
}

// Delete removes the company with the given id.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[id]; !ok {
		return fmt.Errorf("delete company %s: %w", id, ErrNotFound)
	}
	delete(r.companies, id)
	return nil
}

// Len returns the number of stored companies.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.companies)
}

// formatID builds the ENT_NNN id for a sequence number.
func formatID(seq int) string {
	return fmt.Sprintf("ENT_%03d", seq)
}

// parseID extracts the sequence number from an ENT_NNN id.
func parseID(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "ENT_")
	if !ok {
		return 0, false
	}
	seq, err := strconv.Atoi(rest)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}

// clone deep-copies a company so registry state never shares slices or the
// contact pointer with callers.
func clone(c panelmatch.Company) panelmatch.Company {
	c.Certifications = append([]string(nil), c.Certifications...)
	c.Capabilities = append([]string(nil), c.Capabilities...)
	c.Keywords = append([]string(nil), c.Keywords...)
	c.Contracts = append([]panelmatch.Contract(nil), c.Contracts...)
	if c.Contact != nil {
		contact := *c.Contact
		c.Contact = &contact
	}
	return c
}
