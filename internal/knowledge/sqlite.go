package knowledge

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/genome-annotator/internal/domain"
)

// Store persists marker definitions in a local SQLite database so
// deployments can carry curated tables beyond the built-in ones.
// Category reads go through a small LRU cache; Save invalidates the
// affected category.
type Store struct {
	db    *sql.DB
	cache *lru.Cache[string, []domain.MarkerDefinition]
	log   *logrus.Logger
}

// defaultCacheSize bounds the per-category definition cache.
const defaultCacheSize = 64

// NewStore opens (or creates) the marker store at dbPath and migrates
// its schema.
func NewStore(dbPath string, cacheSize int, logger *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("creating marker store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening marker store: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := runMigrations(dbPath, logger); err != nil {
		db.Close()
		return nil, err
	}

	return newStoreWithDB(db, cacheSize, logger)
}

// newStoreWithDB wraps an already-open database. Used by tests with a
// mock connection; no migrations are run.
func newStoreWithDB(db *sql.DB, cacheSize int, logger *logrus.Logger) (*Store, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, []domain.MarkerDefinition](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating definition cache: %w", err)
	}
	return &Store{db: db, cache: cache, log: logger}, nil
}

// Save inserts a definition or updates the existing row for the same
// (rsid, category) pair. Insertion order within a category is preserved
// through the seq column.
func (s *Store) Save(ctx context.Context, def domain.MarkerDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	genotypes, err := json.Marshal(def.Genotypes)
	if err != nil {
		return fmt.Errorf("encoding genotype mapping for %s: %w", def.RSID, err)
	}

	now := time.Now()

	var existingID int64
	err = s.db.QueryRowContext(ctx,
		"SELECT id FROM markers WHERE rsid = ? AND category = ?",
		def.RSID, def.Category,
	).Scan(&existingID)

	switch {
	case err == nil:
		_, err = s.db.ExecContext(ctx, `
			UPDATE markers SET
				gene = ?,
				trait = ?,
				risk_allele = ?,
				orientation = ?,
				genotypes = ?,
				updated_at = ?
			WHERE id = ?
		`,
			def.Gene, def.Trait, def.RiskAllele, string(def.Orientation),
			string(genotypes), now, existingID,
		)
		if err != nil {
			return fmt.Errorf("updating marker %s: %w", def.RSID, err)
		}

	case err == sql.ErrNoRows:
		var seq int64
		if err := s.db.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(seq), -1) + 1 FROM markers WHERE category = ?",
			def.Category,
		).Scan(&seq); err != nil {
			return fmt.Errorf("computing sequence for %s: %w", def.Category, err)
		}

		_, err = s.db.ExecContext(ctx, `
			INSERT INTO markers (
				rsid, category, gene, trait, risk_allele,
				orientation, genotypes, seq, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			def.RSID, def.Category, def.Gene, def.Trait, def.RiskAllele,
			string(def.Orientation), string(genotypes), seq, now, now,
		)
		if err != nil {
			return fmt.Errorf("inserting marker %s: %w", def.RSID, err)
		}

	default:
		return fmt.Errorf("checking existing marker %s: %w", def.RSID, err)
	}

	s.cache.Remove(def.Category)
	return nil
}

// scanner is satisfied by both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDefinition(s scanner) (domain.MarkerDefinition, error) {
	var def domain.MarkerDefinition
	var orientation, genotypes string

	err := s.Scan(&def.RSID, &def.Category, &def.Gene, &def.Trait,
		&def.RiskAllele, &orientation, &genotypes)
	if err != nil {
		return domain.MarkerDefinition{}, err
	}

	def.Orientation = domain.Orientation(orientation)
	if err := json.Unmarshal([]byte(genotypes), &def.Genotypes); err != nil {
		return domain.MarkerDefinition{}, fmt.Errorf("decoding genotype mapping for %s: %w", def.RSID, err)
	}
	return def, nil
}

// DefinitionsByCategory returns the stored definitions of one category in
// insertion order.
func (s *Store) DefinitionsByCategory(ctx context.Context, category string) ([]domain.MarkerDefinition, error) {
	if defs, ok := s.cache.Get(category); ok {
		return defs, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT rsid, category, gene, trait, risk_allele, orientation, genotypes
		FROM markers
		WHERE category = ?
		ORDER BY seq
	`, category)
	if err != nil {
		return nil, fmt.Errorf("querying markers for %s: %w", category, err)
	}
	defer rows.Close()

	var defs []domain.MarkerDefinition
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning marker row: %w", err)
		}
		defs = append(defs, def)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.cache.Add(category, defs)
	return defs, nil
}

// Categories returns the stored category names ordered by first insertion.
// seq restarts at zero per category, so ordering leans on the global
// autoincrement id instead.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT category FROM markers GROUP BY category ORDER BY MIN(id)")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// Count returns the total number of stored definitions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM markers").Scan(&count)
	return count, err
}

// LoadInto registers every stored definition into the given base, after
// the built-in tables so stored categories extend rather than replace
// them. Duplicate rsids within a category are reported as errors by the
// base itself.
func (s *Store) LoadInto(ctx context.Context, base *Base) error {
	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	for _, category := range categories {
		defs, err := s.DefinitionsByCategory(ctx, category)
		if err != nil {
			return err
		}
		if err := base.Register(category, defs...); err != nil {
			return fmt.Errorf("loading stored markers into %s: %w", category, err)
		}
		s.log.WithFields(logrus.Fields{
			"category": category,
			"markers":  len(defs),
		}).Info("Loaded stored marker definitions")
	}

	return nil
}

// MarkerExport is the JSON envelope used by ExportJSON and ImportJSON.
type MarkerExport struct {
	Version    string                    `json:"version"`
	ExportedAt time.Time                 `json:"exported_at"`
	Count      int                       `json:"count"`
	Markers    []domain.MarkerDefinition `json:"markers"`
}

// ExportJSON writes every stored definition as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}

	var all []domain.MarkerDefinition
	for _, category := range categories {
		defs, err := s.DefinitionsByCategory(ctx, category)
		if err != nil {
			return err
		}
		all = append(all, defs...)
	}

	export := &MarkerExport{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Count:      len(all),
		Markers:    all,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// ImportJSON reads a MarkerExport document and saves its definitions.
// Definitions already present for the same (rsid, category) are skipped.
func (s *Store) ImportJSON(ctx context.Context, r io.Reader) (imported, skipped int, err error) {
	var export MarkerExport
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return 0, 0, fmt.Errorf("decoding marker export: %w", err)
	}

	for _, def := range export.Markers {
		var existingID int64
		err := s.db.QueryRowContext(ctx,
			"SELECT id FROM markers WHERE rsid = ? AND category = ?",
			def.RSID, def.Category,
		).Scan(&existingID)

		if err == nil {
			skipped++
			continue
		}
		if err != sql.ErrNoRows {
			return imported, skipped, fmt.Errorf("checking existing marker %s: %w", def.RSID, err)
		}

		if err := s.Save(ctx, def); err != nil {
			return imported, skipped, err
		}
		imported++
	}

	return imported, skipped, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
