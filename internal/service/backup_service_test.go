package service

import (
	"context"
	"encoding/json"
	"testing"

	"go-retail-erp/internal/model"
	"go-retail-erp/internal/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupService_ExportBundlesRawDocuments(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.product(t, "Tee", "10", 1)
	_, err := e.catalog.Add(ctx, model.CatalogPlatform, "TikTok")
	require.NoError(t, err)

	backup, err := e.backup.Export(ctx)
	require.NoError(t, err)
	require.NotNil(t, backup.Products)
	assert.Contains(t, *backup.Products, `"name":"Tee"`)
	require.NotNil(t, backup.Platforms)
	assert.Contains(t, *backup.Platforms, "TikTok")
	assert.Nil(t, backup.Customers)
	assert.Nil(t, backup.Sales)
	assert.Nil(t, backup.ProductTypes)

	raw, err := e.backup.ExportJSON(ctx)
	require.NoError(t, err)
	var decoded map[string]*string
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded, 6)
	assert.Contains(t, decoded, "suppliers")
	assert.Nil(t, decoded["suppliers"])
}

func TestBackupService_ClearAll(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.product(t, "Tee", "10", 1)
	e.customer(t, "Ana")
	_, err := e.catalog.Remove(ctx, model.CatalogSupplier, "Supplier A")
	require.NoError(t, err)

	require.NoError(t, e.backup.ClearAll(ctx))

	keys, err := e.store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	stats, err := e.dashboard.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.ProductCount)
	assert.Zero(t, stats.CustomerCount)

	suppliers, err := e.catalog.List(ctx, model.CatalogSupplier)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSuppliers, suppliers)

	types := e.events.types()
	assert.Equal(t, ws.EventDataCleared, types[len(types)-1])
}
