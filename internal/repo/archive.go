package repo

import (
	"context"
	"errors"
	"sort"
	"sync"

	"shrinkit_go/internal/model"
)

var ErrNotFound = errors.New("not found")

// 인터페이스
type ArchiveRepo interface {
	Save(ctx context.Context, a *model.Archive) error
	FindByID(ctx context.Context, id string) (*model.Archive, error)
	List(ctx context.Context) ([]*model.Archive, error)
	Delete(ctx context.Context, id string) error
}

type archiveRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Archive
}

func NewArchiveRepoInMemory() ArchiveRepo {
	return &archiveRepoInMemory{store: make(map[string]*model.Archive)}
}

func (r *archiveRepoInMemory) Save(_ context.Context, a *model.Archive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	cp.Data = append([]byte(nil), a.Data...)
	r.store[a.ID] = &cp
	return nil
}

func (r *archiveRepoInMemory) FindByID(_ context.Context, id string) (*model.Archive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

// List는 생성 시각 순 (메타데이터만, Data 제외)
func (r *archiveRepoInMemory) List(_ context.Context) ([]*model.Archive, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Archive, 0, len(r.store))
	for _, a := range r.store {
		cp := *a
		cp.Data = nil
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *archiveRepoInMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return ErrNotFound
	}
	delete(r.store, id)
	return nil
}
