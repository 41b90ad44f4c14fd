package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	year := t.Year()
	if t.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%02d-%02d", year%100, (year+1)%100)
}

// formatRecordNumber constructs the business identifier from components.
// "-" is the separator so identifiers stay safe in URLs and filenames.
func formatRecordNumber(prefix, fiscalYear string, sequence int) string {
	return fmt.Sprintf("FD-%s-%s-%03d", prefix, fiscalYear, sequence)
}

// GenerateRecordNumber creates the next business identifier for an entity.
// Format: FD-{prefix}-{fiscal_year}-{sequence}, with the sequence 3-digit
// zero-padded per entity per fiscal year. Retired records keep their
// numbers, so the count includes them.
func GenerateRecordNumber(app *pocketbase.PocketBase, e *Entity, now time.Time) string {
	fiscalYear := GetFiscalYear(now)
	prefix := fmt.Sprintf("FD-%s-%s-", e.NumberPrefix, fiscalYear)

	existing, err := app.FindRecordsByFilter(
		e.Collection,
		fmt.Sprintf("%s ~ {:prefix}", e.NumberField),
		"",
		0, 0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// Collection missing or empty: start the sequence at 1.
		existing = nil
	}

	return formatRecordNumber(e.NumberPrefix, fiscalYear, len(existing)+1)
}
