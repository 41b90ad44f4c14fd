package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Storage columns shared by both record families.
const (
	ColumnType      = "type"
	ColumnDirection = "trade_direction"
	ColumnStatus    = "status"
	ColumnRetired   = "retired"
)

// CleanNumericValue coerces a draft value for a numeric column: empty or
// nil becomes storage null, a parseable string becomes a number, and
// anything else passes through unchanged.
func CleanNumericValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		return t
	default:
		return v
	}
}

// cleanDateValue coerces a draft value for a date column: empty becomes
// storage null, a date-only value becomes a full ISO-8601 timestamp, and
// anything unparseable passes through unchanged.
func cleanDateValue(v string) any {
	s := strings.TrimSpace(v)
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return s
}

// truncateDate reduces a stored timestamp to the YYYY-MM-DD form a date
// input binds to.
func truncateDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

// ToStorageRow translates a confirmed draft into a storage row using the
// entity's declared mapping table. Numeric and date coercion apply only to
// columns declared with those kinds.
func ToStorageRow(e *Entity, draft map[string]string, t RecordType, dir TradeDirection) map[string]any {
	row := map[string]any{
		e.NumberField:   strings.TrimSpace(draft[draftKeyNumber]),
		ColumnType:      string(t),
		ColumnDirection: string(dir),
	}
	for _, m := range e.Mappings {
		v := draft[m.UIKey]
		switch m.Kind {
		case FieldNumber:
			row[m.Column] = CleanNumericValue(v)
		case FieldDate:
			row[m.Column] = cleanDateValue(v)
		default:
			row[m.Column] = strings.TrimSpace(v)
		}
	}
	return row
}

// FromStorageRow inverts ToStorageRow: storage null and missing columns
// become empty strings, numbers render without trailing zeros, and stored
// timestamps truncate to date-only values.
func FromStorageRow(e *Entity, row map[string]any) map[string]string {
	draft := map[string]string{
		draftKeyNumber:    stringCell(row[e.NumberField]),
		draftKeyType:      stringCell(row[ColumnType]),
		draftKeyDirection: stringCell(row[ColumnDirection]),
	}
	for _, m := range e.Mappings {
		v, ok := row[m.Column]
		if !ok || v == nil {
			draft[m.UIKey] = ""
			continue
		}
		switch m.Kind {
		case FieldNumber:
			draft[m.UIKey] = stringCell(v)
		case FieldDate:
			draft[m.UIKey] = truncateDate(stringCell(v))
		default:
			draft[m.UIKey] = stringCell(v)
		}
	}
	return draft
}

// stringCell renders a storage value for a draft or report cell. Floats
// drop trailing zeros so "42" survives a round trip through 42.0.
func stringCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// RowFromRecord reads a stored record into a plain row keyed by column
// name, covering exactly the declared mapping plus the shared columns.
// Unknown store columns are deliberately not copied forward.
func RowFromRecord(e *Entity, rec *core.Record) map[string]any {
	row := map[string]any{
		e.NumberField:   rec.GetString(e.NumberField),
		ColumnType:      rec.GetString(ColumnType),
		ColumnDirection: rec.GetString(ColumnDirection),
		ColumnStatus:    rec.GetString(ColumnStatus),
	}
	for _, m := range e.Mappings {
		switch m.Kind {
		case FieldNumber:
			// PocketBase number columns are NOT NULL with a zero default, so
			// an empty draft value lands in the store as 0. Map it back to
			// unset here; otherwise editing a record turns every blank
			// weight or amount into a literal zero.
			if f := rec.GetFloat(m.Column); f != 0 {
				row[m.Column] = f
			} else {
				row[m.Column] = nil
			}
		case FieldDate:
			dt := rec.GetDateTime(m.Column)
			if dt.IsZero() {
				row[m.Column] = nil
			} else {
				row[m.Column] = dt.Time().UTC().Format(time.RFC3339)
			}
		default:
			row[m.Column] = rec.GetString(m.Column)
		}
	}
	return row
}

// applyRow writes every row value onto the record. Full-record update:
// callers never patch a subset of the mapped columns.
func applyRow(rec *core.Record, row map[string]any) {
	for col, v := range row {
		rec.Set(col, v)
	}
}

// CreateRecord inserts a new active record from a storage row. Store errors
// propagate unmodified; no retry happens here.
func CreateRecord(app *pocketbase.PocketBase, e *Entity, row map[string]any) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId(e.Collection)
	if err != nil {
		return nil, err
	}
	rec := core.NewRecord(col)
	applyRow(rec, row)
	rec.Set(ColumnStatus, "OPEN")
	rec.Set(ColumnRetired, false)
	if err := app.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateRecord performs a full-record update, preserving the record's
// identifier, status and creation timestamp.
func UpdateRecord(app *pocketbase.PocketBase, e *Entity, id string, row map[string]any) (*core.Record, error) {
	rec, err := app.FindRecordById(e.Collection, id)
	if err != nil {
		return nil, err
	}
	applyRow(rec, row)
	if err := app.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// RetireRecord removes a record from the active views by flipping its
// retired flag. Jobs and shipments are never physically deleted; vendors
// are the only physically deleted entity.
func RetireRecord(app *pocketbase.PocketBase, e *Entity, id string) error {
	rec, err := app.FindRecordById(e.Collection, id)
	if err != nil {
		return err
	}
	rec.Set(ColumnRetired, true)
	rec.Set(ColumnStatus, "CANCELLED")
	return app.Save(rec)
}

// ListActive returns non-retired records, newest creation first.
func ListActive(app *pocketbase.PocketBase, e *Entity) ([]*core.Record, error) {
	return app.FindRecordsByFilter(
		e.Collection,
		"retired = false",
		"-created",
		0, 0,
		nil,
	)
}

// ListForReport returns non-retired records ordered by the business
// identifier ascending, the order report views present by default.
func ListForReport(app *pocketbase.PocketBase, e *Entity) ([]*core.Record, error) {
	return app.FindRecordsByFilter(
		e.Collection,
		"retired = false",
		e.NumberField,
		0, 0,
		nil,
	)
}
