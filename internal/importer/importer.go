// Package importer loads company registries from CSV exports. Real-world
// files come with inconsistent column names, so columns are recognised by
// keyword patterns and missing fields are inferred from whatever the row
// does carry.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/panel-entreprises/panelmatch"
)

// Importer parses company datasets.
type Importer struct {
	logger *zap.Logger
}

// New creates an importer. A nil logger disables logging.
func New(logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{logger: logger}
}

// LoadFile reads a CSV company dataset from disk.
func (im *Importer) LoadFile(path string) ([]panelmatch.Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	im.logger.Info("loading company dataset", zap.String("path", path))
	return im.Load(f)
}

// Load reads a CSV company dataset. The first row is the header; the
// delimiter is sniffed because French exports use semicolons as often as
// commas.
func (im *Importer) Load(r io.Reader) ([]panelmatch.Company, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset has no data rows")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	mapping := identifyColumns(headers)

	companies := make([]panelmatch.Company, 0, len(records)-1)
	skipped := 0
	for _, record := range records[1:] {
		row := newRow(headers, record)

		name := extractName(row, mapping)
		if name == "" {
			skipped++
			continue
		}

		company := panelmatch.Company{
			ID:             fmt.Sprintf("ENT_%03d", len(companies)+1),
			Name:           name,
			Domain:         extractDomain(row, mapping),
			Location:       extractLocation(row, mapping),
			Certifications: extractCertifications(row, mapping),
			CA:             extractCA(row, mapping),
			Employees:      extractEmployees(row, mapping),
			Contact:        extractContact(row, mapping),
			Experience:     extractExperience(row, mapping),
			Contracts:      extractContracts(row, mapping),
			Capabilities:   extractCapabilities(row, mapping),
		}
		companies = append(companies, company)
	}

	im.logger.Info("dataset parsed",
		zap.Int("companies", len(companies)),
		zap.Int("skipped_rows", skipped),
	)

	im.enrich(companies)
	return companies, nil
}

// enrich fills in what the file did not state: inferred domains, matching
// keywords and the geographic zone.
func (im *Importer) enrich(companies []panelmatch.Company) {
	for i := range companies {
		c := &companies[i]

		if c.Domain == panelmatch.DomainAutre {
			if inferred := inferDomainFromName(c.Name); inferred != panelmatch.DomainAutre {
				c.Domain = inferred
				im.logger.Debug("inferred domain from name",
					zap.String("company", c.Name), zap.String("domain", inferred))
			}
		}
		if c.Domain == panelmatch.DomainAutre && c.Experience != panelmatch.NotSpecified {
			if inferred := inferDomainFromText(c.Experience); inferred != panelmatch.DomainAutre {
				c.Domain = inferred
				im.logger.Debug("inferred domain from experience",
					zap.String("company", c.Name), zap.String("domain", inferred))
			}
		}
		if c.Domain == panelmatch.DomainAutre && len(c.Contracts) > 0 {
			var texts []string
			for _, contract := range c.Contracts {
				texts = append(texts, contract.Description)
			}
			if inferred := inferDomainFromText(strings.Join(texts, " ")); inferred != panelmatch.DomainAutre {
				c.Domain = inferred
				im.logger.Debug("inferred domain from contracts",
					zap.String("company", c.Name), zap.String("domain", inferred))
			}
		}

		c.GeoZone = determineGeoZone(c.Location)
		c.Keywords = generateKeywords(c)
	}
}

// sniffDelimiter picks the CSV delimiter from the header line.
func sniffDelimiter(data []byte) rune {
	header := string(data)
	if i := strings.IndexByte(header, '\n'); i >= 0 {
		header = header[:i]
	}
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}
