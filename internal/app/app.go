// Package app wires the loader, knowledge base, matching engine and
// report pipeline into runnable commands.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/genome-annotator/internal/config"
	"github.com/genome-annotator/internal/domain"
	"github.com/genome-annotator/internal/engine"
	"github.com/genome-annotator/internal/genome"
	"github.com/genome-annotator/internal/knowledge"
	"github.com/genome-annotator/internal/report"
)

// App holds the wired components for one invocation.
type App struct {
	cfg *domain.Config
	log *logrus.Logger
}

// New builds the application from validated configuration.
func New(manager *config.Manager) (*App, error) {
	cfg := manager.GetConfig()

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &App{cfg: cfg, log: log}, nil
}

// Logger exposes the configured logger.
func (a *App) Logger() *logrus.Logger {
	return a.log
}

func newLogger(cfg domain.LoggingConfig) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	switch strings.ToLower(cfg.Output) {
	case "stdout":
		log.SetOutput(os.Stdout)
	default:
		log.SetOutput(os.Stderr)
	}

	return log, nil
}

// assembleBase builds the built-in knowledge base and, when configured,
// extends it with the SQLite marker store.
func (a *App) assembleBase(ctx context.Context) (*knowledge.Base, error) {
	base, err := knowledge.Builtin()
	if err != nil {
		return nil, err
	}

	if !a.cfg.Knowledge.StoreEnabled {
		return base, nil
	}

	store, err := knowledge.NewStore(a.cfg.Knowledge.StorePath, a.cfg.Knowledge.CacheSize, a.log)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.LoadInto(ctx, base); err != nil {
		return nil, err
	}
	return base, nil
}

// Run loads the configured genome file, resolves every selected category
// and writes the report. It returns the path of the written report.
func (a *App) Run(ctx context.Context) (string, error) {
	loader := genome.NewLoader(a.log)
	idx, err := loader.LoadFile(a.cfg.Genome.Path)
	if err != nil {
		return "", err
	}

	base, err := a.assembleBase(ctx)
	if err != nil {
		return "", err
	}

	rep := a.annotate(ctx, idx, base)
	return a.writeReport(rep)
}

// annotate resolves every selected category against the index.
func (a *App) annotate(ctx context.Context, idx *genome.Index, base *knowledge.Base) report.Report {
	eng := engine.New(a.log)
	agg := report.NewAggregator(a.cfg.Genome.Path, a.log)
	agg.SetSourceStats(idx.Len(), idx.Malformed, idx.Duplicates)

	for _, category := range a.selectCategories(base) {
		agg.AddFindings(category, eng.Resolve(ctx, idx, base.Definitions(category))...)

		for _, rule := range base.Compounds(category) {
			agg.AddCompound(eng.ResolveCompound(idx, rule))
		}
		for _, panel := range base.Panels(category) {
			agg.AddScore(eng.ScoreTrait(idx, panel))
		}
	}

	return agg.Build()
}

// selectCategories returns the configured categories, or all registered
// ones when none are configured. Unknown names are skipped with a warning.
func (a *App) selectCategories(base *knowledge.Base) []string {
	if len(a.cfg.Analysis.Categories) == 0 {
		return base.Categories()
	}

	known := make(map[string]bool, len(base.Categories()))
	for _, c := range base.Categories() {
		known[c] = true
	}

	var selected []string
	for _, c := range a.cfg.Analysis.Categories {
		if !known[c] {
			a.log.WithField("category", c).Warn("Skipping unknown category")
			continue
		}
		selected = append(selected, c)
	}
	return selected
}

func (a *App) writeReport(rep report.Report) (string, error) {
	if err := os.MkdirAll(a.cfg.Report.Dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	format := strings.ToLower(a.cfg.Report.Format)
	ext := "md"
	if format == "json" {
		ext = "json"
	}
	path := filepath.Join(a.cfg.Report.Dir, fmt.Sprintf("report-%s.%s", rep.RunID, ext))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	switch format {
	case "json":
		encoder := json.NewEncoder(f)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(rep)
	default:
		err = report.RenderMarkdown(f, rep)
	}
	if err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	a.log.WithFields(logrus.Fields{
		"path":   path,
		"format": format,
	}).Info("Report written")

	return path, nil
}

// ExportMarkers writes the SQLite marker store as JSON.
func (a *App) ExportMarkers(ctx context.Context, w io.Writer) error {
	store, err := knowledge.NewStore(a.cfg.Knowledge.StorePath, a.cfg.Knowledge.CacheSize, a.log)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.ExportJSON(ctx, w)
}

// ImportMarkers loads a JSON marker export into the SQLite marker store.
func (a *App) ImportMarkers(ctx context.Context, r io.Reader) error {
	store, err := knowledge.NewStore(a.cfg.Knowledge.StorePath, a.cfg.Knowledge.CacheSize, a.log)
	if err != nil {
		return err
	}
	defer store.Close()

	imported, skipped, err := store.ImportJSON(ctx, r)
	if err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{
		"imported": imported,
		"skipped":  skipped,
	}).Info("Marker import finished")

	return nil
}
