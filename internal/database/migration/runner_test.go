package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"career-compass/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_OrdersAndFilters(t *testing.T) {
	files := fstest.MapFS{
		"V2__add_index.sql": {Data: []byte("CREATE INDEX x ON t (a);")},
		"V1__init.sql":      {Data: []byte("  CREATE TABLE t (a INT);\n")},
		"README.md":         {Data: []byte("ignored")},
		"V3_bad_name.sql":   {Data: []byte("ignored too")},
	}

	migs, err := loadMigrations(files)
	require.NoError(t, err)
	require.Len(t, migs, 2)

	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "init", migs[0].Name)
	assert.Equal(t, "CREATE TABLE t (a INT);", migs[0].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.Equal(t, int64(2), migs[1].Version)
}

func TestLoadMigrations_Rejects(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}})
	assert.Error(t, err)

	_, err = loadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 2;")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")
}

func TestEmbeddedMigrations(t *testing.T) {
	migs, err := loadMigrations(migrations.Files)
	require.NoError(t, err)
	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS recommendations")
}

func TestRun_NilArguments(t *testing.T) {
	assert.Error(t, Runner{}.Run(context.Background(), nil))
}
