package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go-retail-erp/internal/repository"
	"go-retail-erp/internal/ws"
	"go-retail-erp/pkg/kvstore"
)

const BackupFileName = "erp-backup.json"

// Backup bundles the raw JSON document stored under each key. A key that was
// never written is null.
type Backup struct {
	Products     *string `json:"products"`
	Customers    *string `json:"customers"`
	Sales        *string `json:"sales"`
	ProductTypes *string `json:"productTypes"`
	Suppliers    *string `json:"suppliers"`
	Platforms    *string `json:"platforms"`
}

func (b *Backup) field(key string) **string {
	switch key {
	case repository.KeyProducts:
		return &b.Products
	case repository.KeyCustomers:
		return &b.Customers
	case repository.KeySales:
		return &b.Sales
	case repository.KeyProductTypes:
		return &b.ProductTypes
	case repository.KeySuppliers:
		return &b.Suppliers
	case repository.KeyPlatforms:
		return &b.Platforms
	}
	return nil
}

type BackupService interface {
	Export(ctx context.Context) (*Backup, error)
	ExportJSON(ctx context.Context) ([]byte, error)
	ClearAll(ctx context.Context) error
}

type backupService struct {
	store  kvstore.Store
	events Broadcaster
}

func NewBackupService(store kvstore.Store, events Broadcaster) BackupService {
	return &backupService{store: store, events: orNoop(events)}
}

// Export reads every key inside one update so the bundle is consistent.
func (s *backupService) Export(ctx context.Context) (*Backup, error) {
	backup := &Backup{}
	err := s.store.Update(ctx, func(b kvstore.Bucket) error {
		for _, key := range repository.BackupKeys {
			raw, ok, err := b.Get(ctx, key)
			if err != nil {
				return fmt.Errorf("export %s: %w", key, err)
			}
			if ok {
				v := raw
				*backup.field(key) = &v
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return backup, nil
}

func (s *backupService) ExportJSON(ctx context.Context) ([]byte, error) {
	backup, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(backup, "", "  ")
}

// ClearAll erases every key. Catalog lists fall back to their defaults afterwards.
func (s *backupService) ClearAll(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.events.Publish(map[string]interface{}{
		"type":    ws.EventDataCleared,
		"action":  "clear_all",
		"message": "All data has been cleared",
	})
	return nil
}
