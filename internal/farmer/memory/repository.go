// Package memory is an in-memory farmer repository used for development
// and tests. Production deployments plug a database-backed implementation
// into the same interface.
package memory

import (
	"context"
	"sort"
	"sync"

	"krishisaathi/internal/farmer"
	"krishisaathi/internal/model"
)

type repository struct {
	mu      sync.RWMutex
	farmers map[string]model.Farmer
}

// New creates an empty in-memory farmer repository.
func New() farmer.Repository {
	return &repository{farmers: make(map[string]model.Farmer)}
}

// NewWith seeds the repository with the given farmers.
func NewWith(farmers ...model.Farmer) farmer.Repository {
	r := &repository{farmers: make(map[string]model.Farmer, len(farmers))}
	for _, f := range farmers {
		r.farmers[f.ID] = f
	}
	return r
}

func (r *repository) GetByID(ctx context.Context, id string) (model.Farmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.farmers[id]
	if !ok {
		return model.Farmer{}, farmer.ErrNotFound
	}
	return f, nil
}

func (r *repository) UpdateLocation(ctx context.Context, id string, update farmer.ProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.farmers[id]
	if !ok {
		return farmer.ErrNotFound
	}
	if v, ok := update[farmer.FieldState]; ok {
		f.State = v
	}
	if v, ok := update[farmer.FieldDistrict]; ok {
		f.District = v
	}
	if v, ok := update[farmer.FieldVillage]; ok {
		f.Village = v
	}
	r.farmers[id] = f
	return nil
}

func (r *repository) List(ctx context.Context) ([]model.Farmer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Farmer, 0, len(r.farmers))
	for _, f := range r.farmers {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
