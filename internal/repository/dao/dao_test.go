package dao

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/festivalhub/festivalhub-api/internal/db"
)

// newTestDB opens a per-test in-memory SQLite database and migrates the
// tables. The database name is derived from the test name so parallel
// tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	gormDB, err := db.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	require.NoError(t, InitTables(gormDB))

	return gormDB
}
