package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// jsonlTableMapping maps JSONL files to their SQLite tables and column lists.
// idColumn, when set, is filled with a fresh UUID v7 for records that do not
// carry one.
var jsonlTableMapping = []struct {
	file     string
	table    string
	columns  []string
	idColumn string
}{
	{airportsJSONL, "airports", []string{"code", "name", "city", "country", "latitude", "longitude"}, ""},
	{airlinesJSONL, "airlines", []string{"code", "name"}, ""},
	{routesJSONL, "routes", []string{"route_id", "source_code", "dest_code", "airline_code"}, "route_id"},
}

// loadAllJSONL reads each JSONL file from dataDir and inserts its records
// into the matching table. Loading is transactional: all files load or the
// database stays empty. Malformed lines, records that violate a constraint
// and unknown fields are skipped.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, mapping := range jsonlTableMapping {
		records, err := readJSONL(filepath.Join(dataDir, mapping.file))
		if err != nil {
			return fmt.Errorf("reading %s: %w", mapping.file, err)
		}
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(tx, mapping.table, mapping.columns, mapping.idColumn, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", mapping.file, mapping.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertRecords inserts parsed JSONL records into table. Only the listed
// columns are read from each record; a missing column is inserted as NULL so
// NOT NULL constraints reject incomplete records.
func insertRecords(tx *sql.Tx, table string, columns []string, idColumn string, records []json.RawMessage) error {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			continue
		}

		args := make([]any, len(columns))
		for i, col := range columns {
			val, ok := obj[col]
			switch {
			case col == idColumn && (!ok || val == ""):
				args[i] = newRouteID()
			case !ok:
				args[i] = nil
			default:
				args[i] = val
			}
		}

		if _, err := stmt.Exec(args...); err != nil {
			// Duplicates and incomplete records are dropped, not fatal.
			continue
		}
	}
	return nil
}
