package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestSQLiteStore(t *testing.T) Store {
	t.Helper()
	db, err := sqlx.Connect("sqlite", filepath.Join(t.TempDir(), "erp.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	s, err := NewSQLiteStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, newTestSQLiteStore)
}
