package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	puresqlite "github.com/glebarez/sqlite"
	"github.com/yeremiapane/hotel-backoffice/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Store is the handle every ledger operation goes through. Each operation
// takes a connection from the pool for one transaction and gives it back
// before returning.
type Store struct {
	db     *gorm.DB
	driver string
}

// Open connects to the configured store and verifies it with a ping.
// Both sqlite drivers get foreign-key enforcement and case-sensitive LIKE
// on every connection, and a pool of one connection.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewQueryLogger(cfg.SlowQuery),
		NowFunc: func() time.Time {
			return time.Now().Local().Truncate(time.Second)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if isSQLite(cfg.Driver) {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db, driver: cfg.Driver}, nil
}

func dialectorFor(cfg config.StoreConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return sqlite.Open(cfg.Path + "?_foreign_keys=1&_cslike=1&_busy_timeout=5000"), nil
	case config.DriverSQLitePure:
		return puresqlite.Open(cfg.Path + "?_pragma=foreign_keys(1)&_pragma=case_sensitive_like(1)&_pragma=busy_timeout(5000)"), nil
	case config.DriverMySQL:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("mysql driver requires a DSN")
		}
		return mysql.Open(withParseTime(cfg.DSN)), nil
	case config.DriverPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("postgres driver requires a DSN")
		}
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// withParseTime makes the mysql driver return DATETIME columns as time.Time.
func withParseTime(dsn string) string {
	if strings.Contains(dsn, "parseTime=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=true"
	}
	return dsn + "?parseTime=true"
}

func isSQLite(driver string) bool {
	return driver == config.DriverSQLite || driver == config.DriverSQLitePure || driver == ""
}

// Transaction runs fn inside one transaction. A nil return commits; an error
// or a panic rolls back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// DB returns a session bound to ctx for single-statement reads.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Dialect is the gorm dialector name: sqlite, mysql or postgres.
func (s *Store) Dialect() string {
	return s.db.Dialector.Name()
}

// Contains returns a case-sensitive substring condition on expr taking one
// LIKE pattern argument (see Pattern).
func (s *Store) Contains(expr string) string {
	if s.Dialect() == config.DriverMySQL {
		return expr + " LIKE BINARY ?"
	}
	return expr + " LIKE ?"
}

// Pattern wraps a filter value in LIKE wildcards.
func Pattern(value string) string {
	return "%" + value + "%"
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
