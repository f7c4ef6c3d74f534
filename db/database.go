package db

import (
	"database/sql"
	_ "embed"
	"log"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

// InitDB opens the Postgres connection, verifies it and applies the schema.
func InitDB(databaseURL string, ssl bool) *sql.DB {
	dsn := withSSLMode(databaseURL, ssl)

	database, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err = database.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if _, err = database.Exec(schema); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}

	log.Println("database initialized")
	return database
}

// statementTimeoutMS bounds every store call server-side. A hung statement
// surfaces as pq error 57014 instead of hanging the request forever.
const statementTimeoutMS = "5000"

// withSSLMode forces an explicit sslmode on the connection string so the
// DATABASE_SSL flag always wins over whatever the URL carries. It also pins
// statement_timeout; lib/pq forwards unknown parameters to the server as
// run-time settings.
func withSSLMode(databaseURL string, ssl bool) string {
	mode := "disable"
	if ssl {
		mode = "require"
	}

	u, err := url.Parse(databaseURL)
	if err != nil || !strings.HasPrefix(u.Scheme, "postgres") {
		return databaseURL
	}
	q := u.Query()
	q.Set("sslmode", mode)
	if q.Get("statement_timeout") == "" {
		q.Set("statement_timeout", statementTimeoutMS)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
