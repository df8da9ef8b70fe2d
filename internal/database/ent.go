package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	ent "github.com/daybook-app/daybook/ent/generated"
)

// Clients bundles the two views of one connection pool: the Ent client
// used for entity access and a sqlx handle for the raw aggregate
// queries Ent's builder cannot express.
type Clients struct {
	Ent *ent.Client
	DB  *sqlx.DB
}

// Config for database connection
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Debug    bool
}

// NewClients opens the PostgreSQL pool and wraps it for both Ent and
// sqlx.
func NewClients(cfg Config) (*Clients, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Create Ent driver over the shared pool
	drv := entsql.OpenDB(dialect.Postgres, db)

	opts := []ent.Option{ent.Driver(drv)}
	if cfg.Debug {
		opts = append(opts, ent.Debug())
	}

	return &Clients{
		Ent: ent.NewClient(opts...),
		DB:  sqlx.NewDb(db, "postgres"),
	}, nil
}

// Close releases the underlying pool. Closing the Ent client closes the
// shared *sql.DB, so the sqlx handle needs no separate close.
func (c *Clients) Close() error {
	return c.Ent.Close()
}
