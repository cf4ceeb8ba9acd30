package database

import (
	"database/sql"
	"fmt"
	"log"
	"net/url"
	"time"
)

const (
	defaultPingTimeout  = 5 * time.Second
	defaultConnMaxIdle  = 2 * time.Minute
	defaultConnMaxLife  = 30 * time.Minute
	defaultMaxIdleConns = 5
	defaultMaxOpenConns = 25
)

// ConnectionParams are the engine connection settings, owned by the
// configuration layer.
type ConnectionParams struct {
	Database string
	Username string
	Password string
	Host     string
	Port     int
	UseSSL   bool
}

// DSN renders the params as a lib/pq connection string.
func (p ConnectionParams) DSN() string {
	sslmode := "disable"
	if p.UseSSL {
		sslmode = "require"
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", p.Host, p.Port),
		User:   url.UserPassword(p.Username, p.Password),
		Path:   "/" + p.Database,
	}

	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()

	return u.String()
}

// PgParlorRepository is the Postgres-backed store handle. It is constructed
// once at process start, shared by reference, and torn down with Close.
type PgParlorRepository struct {
	conn *sql.DB
	log  *log.Logger
}

func NewPgParlorRepository(dsn string, logger *log.Logger) (*PgParlorRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(defaultConnMaxIdle)
	db.SetConnMaxLifetime(defaultConnMaxLife)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetMaxOpenConns(defaultMaxOpenConns)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &PgParlorRepository{conn: db, log: logger}, nil
}

func (db *PgParlorRepository) Ping() error {
	return db.conn.Ping()
}

func (db *PgParlorRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// userExists and chatroomExists probe for an anchor row so list reads can
// distinguish a missing parent from a parent with no children.
func (db *PgParlorRepository) userExists(id int) (bool, error) {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (db *PgParlorRepository) chatroomExists(id int) (bool, error) {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS (SELECT 1 FROM chatrooms WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
