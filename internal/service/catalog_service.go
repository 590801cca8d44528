package service

import (
	"context"
	"strings"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/repository"
	"go-retail-erp/internal/ws"
	"go-retail-erp/pkg/kvstore"
)

// CatalogService manages the product type, supplier and platform lists.
// Removing a value never touches products or sales that still carry it.
type CatalogService interface {
	List(ctx context.Context, kind model.CatalogKind) ([]string, error)
	ListAll(ctx context.Context) (map[model.CatalogKind][]string, error)
	Add(ctx context.Context, kind model.CatalogKind, value string) ([]string, error)
	Remove(ctx context.Context, kind model.CatalogKind, value string) ([]string, error)
}

type catalogService struct {
	store   kvstore.Store
	catalog repository.CatalogRepository
	events  Broadcaster
}

func NewCatalogService(store kvstore.Store, catalog repository.CatalogRepository, events Broadcaster) CatalogService {
	return &catalogService{
		store:   store,
		catalog: catalog,
		events:  orNoop(events),
	}
}

func (s *catalogService) List(ctx context.Context, kind model.CatalogKind) ([]string, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCatalogKind
	}
	return s.catalog.FindAll(ctx, kind)
}

func (s *catalogService) ListAll(ctx context.Context) (map[model.CatalogKind][]string, error) {
	out := make(map[model.CatalogKind][]string, len(model.CatalogKinds))
	for _, kind := range model.CatalogKinds {
		values, err := s.catalog.FindAll(ctx, kind)
		if err != nil {
			return nil, err
		}
		out[kind] = values
	}
	return out, nil
}

// Add trims value and appends it unless it is empty or already present
// (case-sensitive). The no-op cases return the current list without writing.
func (s *catalogService) Add(ctx context.Context, kind model.CatalogKind, value string) ([]string, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCatalogKind
	}
	value = strings.TrimSpace(value)

	var values []string
	changed := false
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.catalog.WithTx(b)
		current, err := repo.FindAll(ctx, kind)
		if err != nil {
			return err
		}
		values = current
		if value == "" || contains(current, value) {
			return nil
		}
		values = append(current, value)
		changed = true
		return repo.SaveAll(ctx, kind, values)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.publish(kind, "added", value)
	}
	return values, nil
}

// Remove drops every entry equal to value and persists the list.
func (s *catalogService) Remove(ctx context.Context, kind model.CatalogKind, value string) ([]string, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCatalogKind
	}

	var values []string
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		repo := s.catalog.WithTx(b)
		current, err := repo.FindAll(ctx, kind)
		if err != nil {
			return err
		}
		values = make([]string, 0, len(current))
		for _, v := range current {
			if v != value {
				values = append(values, v)
			}
		}
		return repo.SaveAll(ctx, kind, values)
	})
	if err != nil {
		return nil, err
	}

	s.publish(kind, "removed", value)
	return values, nil
}

func (s *catalogService) publish(kind model.CatalogKind, action, value string) {
	s.events.Publish(map[string]interface{}{
		"type":   ws.EventCatalogUpdate,
		"action": action,
		"kind":   kind,
		"value":  value,
	})
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
