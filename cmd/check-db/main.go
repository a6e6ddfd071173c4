package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/ulsa-utsa/ulsa-backend/internal/config"
)

// check-db verifies database connectivity: it lists the databases on the
// configured server, then connects to the target database and lists its
// public tables. Useful when pointing a fresh deployment at a new server.
func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Connect to the default postgres database to enumerate all databases.
	fmt.Println("Connecting to database server...")
	conn, err := pgx.Connect(ctx, cfg.DatabaseURLFor("postgres"))
	if err != nil {
		log.Fatalf("connect to server: %v", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx,
		`SELECT datname FROM pg_database WHERE datistemplate = false ORDER BY datname`)
	if err != nil {
		log.Fatalf("list databases: %v", err)
	}

	fmt.Println("\nAvailable databases:")
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			log.Fatalf("scan database name: %v", err)
		}
		fmt.Printf("  - %s\n", name)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("list databases: %v", err)
	}

	// Now connect to the target database and list its tables.
	fmt.Printf("\nTrying to connect to: %s\n", cfg.DBName)
	target, err := pgx.Connect(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("connect to %s: %v", cfg.DBName, err)
	}
	defer target.Close(ctx)

	tableRows, err := target.Query(ctx,
		`SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'`)
	if err != nil {
		log.Fatalf("list tables: %v", err)
	}

	fmt.Printf("\nTables in %s:\n", cfg.DBName)
	for tableRows.Next() {
		var name string
		if err := tableRows.Scan(&name); err != nil {
			log.Fatalf("scan table name: %v", err)
		}
		fmt.Printf("  - %s\n", name)
	}
	if err := tableRows.Err(); err != nil {
		log.Fatalf("list tables: %v", err)
	}
}
