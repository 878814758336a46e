package knowledge

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genome-annotator/internal/domain"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	return log
}

func createTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "markers.db")
	store, err := NewStore(dbPath, 0, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "markers.db")

	store, err := NewStore(dbPath, 16, testLogger())
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should exist")

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_Save(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	def := testDefinition("rs1801133")
	def.Category = "cardiovascular"

	require.NoError(t, store.Save(ctx, def))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	defs, err := store.DefinitionsByCategory(ctx, "cardiovascular")
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "rs1801133", defs[0].RSID)
	assert.Equal(t, domain.OrientationForward, defs[0].Orientation)
	assert.Equal(t, def.Genotypes["AG"], defs[0].Genotypes["AG"])
}

func TestStore_Save_Update(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	def := testDefinition("rs1")
	def.Category = "alpha"
	require.NoError(t, store.Save(ctx, def))

	def.Trait = "Updated trait"
	require.NoError(t, store.Save(ctx, def))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "update should not add a row")

	defs, err := store.DefinitionsByCategory(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "Updated trait", defs[0].Trait)
}

func TestStore_Save_RejectsInvalid(t *testing.T) {
	store := createTestStore(t)

	def := testDefinition("rs1")
	def.Category = "alpha"
	def.Genotypes = nil

	assert.Error(t, store.Save(context.Background(), def))
}

func TestStore_DefinitionsByCategory_Order(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for _, rsid := range []string{"rs3", "rs1", "rs2"} {
		def := testDefinition(rsid)
		def.Category = "alpha"
		require.NoError(t, store.Save(ctx, def))
	}

	defs, err := store.DefinitionsByCategory(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, defs, 3)
	assert.Equal(t, "rs3", defs[0].RSID)
	assert.Equal(t, "rs1", defs[1].RSID)
	assert.Equal(t, "rs2", defs[2].RSID)
}

func TestStore_Categories(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for _, tc := range []struct{ rsid, category string }{
		{"rs1", "beta"},
		{"rs2", "alpha"},
		{"rs3", "beta"},
	} {
		def := testDefinition(tc.rsid)
		def.Category = tc.category
		require.NoError(t, store.Save(ctx, def))
	}

	categories, err := store.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "alpha"}, categories)
}

func TestStore_LoadInto(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	def := testDefinition("rs9000")
	def.Category = "custom"
	require.NoError(t, store.Save(ctx, def))

	base := NewBase()
	require.NoError(t, base.Register("alpha", testDefinition("rs1")))
	require.NoError(t, store.LoadInto(ctx, base))

	assert.Equal(t, []string{"alpha", "custom"}, base.Categories())
	_, ok := base.Lookup("custom", "rs9000")
	assert.True(t, ok)
}

func TestStore_ExportImportJSON(t *testing.T) {
	source := createTestStore(t)
	ctx := context.Background()

	for _, rsid := range []string{"rs1", "rs2"} {
		def := testDefinition(rsid)
		def.Category = "alpha"
		require.NoError(t, source.Save(ctx, def))
	}

	var buf bytes.Buffer
	require.NoError(t, source.ExportJSON(ctx, &buf))

	dest := createTestStore(t)
	existing := testDefinition("rs1")
	existing.Category = "alpha"
	require.NoError(t, dest.Save(ctx, existing))

	imported, skipped, err := dest.ImportJSON(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, skipped)

	count, err := dest.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStore_ImportJSON_Invalid(t *testing.T) {
	store := createTestStore(t)

	_, _, err := store.ImportJSON(context.Background(), bytes.NewBufferString("not json"))
	assert.Error(t, err)
}

func TestStore_Save_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := newStoreWithDB(db, 0, testLogger())
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id FROM markers").
		WillReturnError(assert.AnError)

	def := testDefinition("rs1")
	def.Category = "alpha"
	err = store.Save(context.Background(), def)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DefinitionsByCategory_Cache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := newStoreWithDB(db, 8, testLogger())
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{
		"rsid", "category", "gene", "trait", "risk_allele", "orientation", "genotypes",
	}).AddRow("rs1", "alpha", "GENE", "Test trait", "G", "forward",
		`{"AA":{"severity":"normal","description":"typical"}}`)

	// Only one query expected; the second read must hit the cache.
	mock.ExpectQuery("SELECT rsid, category").
		WithArgs("alpha").
		WillReturnRows(rows)

	ctx := context.Background()
	first, err := store.DefinitionsByCategory(ctx, "alpha")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := store.DefinitionsByCategory(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}
