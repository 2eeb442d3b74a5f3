package sqlite

import (
	"database/sql"
	"fmt"
)

// Schema DDL for the flight network.
const (
	createAirports = `CREATE TABLE airports (
    code TEXT NOT NULL PRIMARY KEY,
    name TEXT,
    city TEXT NOT NULL,
    country TEXT,
    latitude REAL NOT NULL,
    longitude REAL NOT NULL
);`

	createAirlines = `CREATE TABLE airlines (
    code TEXT NOT NULL PRIMARY KEY,
    name TEXT
);`

	createRoutes = `CREATE TABLE routes (
    route_id TEXT NOT NULL PRIMARY KEY,
    source_code TEXT NOT NULL,
    dest_code TEXT NOT NULL,
    airline_code TEXT NOT NULL
);`
)

// Index DDL for the queries the route search issues.
const (
	idxAirportsCity     = `CREATE INDEX idx_airports_city ON airports(city);`
	idxRoutesSource     = `CREATE INDEX idx_routes_source ON routes(source_code);`
	idxRoutesSourceDest = `CREATE INDEX idx_routes_source_dest ON routes(source_code, dest_code);`
	idxRoutesUnique     = `CREATE UNIQUE INDEX idx_routes_unique ON routes(source_code, dest_code, airline_code);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createAirports,
	createAirlines,
	createRoutes,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxAirportsCity,
	idxRoutesSource,
	idxRoutesSourceDest,
	idxRoutesUnique,
}

// createSchema executes every table and index statement on db.
func createSchema(db *sql.DB) error {
	for _, stmt := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
