// Package store provides SQLite-backed persistence for the stub endpoint.
//
// The database stores:
//   - API Gateway method responses, keyed by their four path identifiers
//   - Route 53 resource record sets, keyed by zone, name, type and set identifier
//   - the change log of applied Route 53 change batches
//
// Rows hold the same wire documents the services exchange (JSON for method
// responses, XML for record sets), so the stub reads and writes them with the
// client-side codecs. The schema is managed by golang-migrate from embedded
// migrations.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jroosing/awsrest/internal/protocol"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

var (
	// ErrNotFound is returned when a keyed row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a create collides with an existing row.
	ErrAlreadyExists = errors.New("already exists")
)

// Store wraps a SQLite connection with serialized writes.
type Store struct {
	conn *sql.DB
	mu   sync.RWMutex

	jsonFactory protocol.JSONFactory
	xmlFactory  protocol.XMLFactory
}

// Open opens or creates the database at path and applies pending migrations.
func Open(path string) (*Store, error) {
	dsn := path
	if path != MemoryPath {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: an in-memory database lives and dies with it, and
	// SQLite serializes writers anyway.
	conn.SetMaxOpenConns(1)

	if err := migrateUp(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{
		conn:        conn,
		jsonFactory: protocol.NewJSONProtocolFactory(protocol.ContentTypeJSON),
		xmlFactory:  protocol.NewXMLProtocolFactory(protocol.ContentTypeXML),
	}, nil
}

func migrateUp(conn *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	// m.Close would close conn as well; the store owns it.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Health checks database connectivity.
func (s *Store) Health() error {
	return s.conn.Ping()
}
