package service

import (
	"sync"

	"go-retail-erp/internal/model"
)

// DraftStore keeps open sale drafts in memory, keyed by id. Drafts are lost on
// restart.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*model.Draft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*model.Draft)}
}

// Open creates an empty draft and returns a copy of it.
func (s *DraftStore) Open() *model.Draft {
	d := model.NewDraft()
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d.Clone()
}

func (s *DraftStore) Get(id string) (*model.Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// With runs fn on the stored draft while holding the lock. Changes made by fn
// are kept even when it returns an error, so fn must validate before mutating.
func (s *DraftStore) With(id string, fn func(d *model.Draft) error) (*model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	return d.Clone(), nil
}

func (s *DraftStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return false
	}
	delete(s.drafts, id)
	return true
}

func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
