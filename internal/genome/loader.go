// Package genome loads raw consumer genotyping exports (23andMe-style flat
// tables of rsid, chromosome, position, genotype) into an rsid-indexed
// in-memory structure.
package genome

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/genome-annotator/internal/domain"
)

// commentPrefix marks header and comment lines in the export.
const commentPrefix = "#"

// Index is the rsid-keyed view of a loaded genome export. Read-only once
// built; safe for concurrent lookups.
type Index struct {
	records map[string]domain.GenomeRecord

	// Malformed counts data rows skipped for wrong column count or an
	// unparseable position. Duplicates counts rows discarded because an
	// earlier row already claimed the rsid.
	Malformed  int
	Duplicates int
}

// Lookup returns the record for an rsid, if the export covered it.
func (i *Index) Lookup(rsid string) (domain.GenomeRecord, bool) {
	rec, ok := i.records[rsid]
	return rec, ok
}

// Len returns the number of indexed markers.
func (i *Index) Len() int {
	return len(i.records)
}

// Loader parses genotyping exports. It tolerates tab or comma delimiters
// (auto-detected from the first data line) and ragged whitespace.
type Loader struct {
	log *logrus.Logger
}

// NewLoader creates a new export loader.
func NewLoader(logger *logrus.Logger) *Loader {
	return &Loader{log: logger}
}

// LoadFile opens and parses the export at path.
func (l *Loader) LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewLoadError(path, "cannot open file", err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load parses an export from r. The name is used only for error reporting.
// It fails with a LoadError only when reading fails or no data row parses;
// malformed rows are skipped and counted, duplicates keep the first-seen
// record.
func (l *Loader) Load(r io.Reader, name string) (*Index, error) {
	idx := &Index{records: make(map[string]domain.GenomeRecord)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var delimiter string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		if delimiter == "" {
			delimiter = detectDelimiter(line)
		}

		rec, ok := l.parseRow(line, delimiter, lineNo)
		if !ok {
			idx.Malformed++
			continue
		}

		if _, seen := idx.records[rec.RSID]; seen {
			idx.Duplicates++
			l.log.WithFields(logrus.Fields{
				"rsid": rec.RSID,
				"line": lineNo,
			}).Debug("Duplicate rsid, keeping first-seen record")
			continue
		}
		idx.records[rec.RSID] = rec
	}

	if err := scanner.Err(); err != nil {
		return nil, domain.NewLoadError(name, "read failed", err)
	}
	if idx.Len() == 0 {
		return nil, domain.NewLoadError(name, "no parseable data rows", nil)
	}

	l.log.WithFields(logrus.Fields{
		"source":     name,
		"markers":    idx.Len(),
		"malformed":  idx.Malformed,
		"duplicates": idx.Duplicates,
	}).Info("Genome export loaded")

	return idx, nil
}

// parseRow splits one data line into a GenomeRecord. Rows without exactly
// four columns, or with a position that is not an integer, are malformed.
func (l *Loader) parseRow(line, delimiter string, lineNo int) (domain.GenomeRecord, bool) {
	fields := splitFields(line, delimiter)
	if len(fields) != 4 {
		l.log.WithFields(logrus.Fields{
			"line":    lineNo,
			"columns": len(fields),
		}).Debug("Skipping row with wrong column count")
		return domain.GenomeRecord{}, false
	}

	position, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		l.log.WithFields(logrus.Fields{
			"line":     lineNo,
			"position": fields[2],
		}).Debug("Skipping row with unparseable position")
		return domain.GenomeRecord{}, false
	}

	genotype := strings.ToUpper(fields[3])
	if domain.IsNoCall(genotype) {
		genotype = domain.NoCall
	}

	return domain.GenomeRecord{
		RSID:       fields[0],
		Chromosome: fields[1],
		Position:   position,
		Genotype:   genotype,
	}, true
}

// detectDelimiter inspects the first data line: tab wins over comma, and a
// line with neither falls back to whitespace splitting.
func detectDelimiter(line string) string {
	if strings.Contains(line, "\t") {
		return "\t"
	}
	if strings.Contains(line, ",") {
		return ","
	}
	return " "
}

// splitFields splits on the detected delimiter and trims ragged whitespace.
// Empty cells are kept: a row ending in a bare delimiter still has four
// columns, and its empty genotype normalizes to the no-call sentinel.
func splitFields(line, delimiter string) []string {
	if delimiter == " " {
		return strings.Fields(line)
	}

	fields := strings.Split(line, delimiter)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// NewIndex builds an index directly from records, keeping first-seen on
// duplicate rsids. Intended for tests and for callers that already hold
// parsed records.
func NewIndex(records ...domain.GenomeRecord) *Index {
	idx := &Index{records: make(map[string]domain.GenomeRecord, len(records))}
	for _, rec := range records {
		if _, seen := idx.records[rec.RSID]; seen {
			idx.Duplicates++
			continue
		}
		if domain.IsNoCall(rec.Genotype) {
			rec.Genotype = domain.NoCall
		}
		idx.records[rec.RSID] = rec
	}
	return idx
}

// String summarizes the index for logs.
func (i *Index) String() string {
	return fmt.Sprintf("genome index: %d markers (%d malformed, %d duplicate rows skipped)",
		i.Len(), i.Malformed, i.Duplicates)
}
