package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect identifies which backend a Store talks to. It is chosen once at
// process start and never changes for the lifetime of the Store.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Store executes parameterized SQL against either an embedded SQLite file or
// a PostgreSQL server behind one contract. Queries are always written with
// `?` placeholders; the store renumbers them to `$1..$n` for PostgreSQL and
// normalizes the two drivers' result shapes.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// OpenSQLite opens the embedded single-file backend at path.
func OpenSQLite(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &Store{db: db, dialect: DialectSQLite}, nil
}

// OpenPostgres opens the client/server backend using connStr.
func OpenPostgres(connStr string) (*Store, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres database: %w", err)
	}

	return &Store{db: db, dialect: DialectPostgres}, nil
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Row is one result row keyed by column name. Typed accessors paper over the
// drivers' different scan types (SQLite hands back int64 and text timestamps,
// pgx hands back time.Time and sometimes []byte).
type Row map[string]any

// Int64 returns the named column as int64, or 0 when absent or NULL.
func (r Row) Int64(column string) int64 {
	switch v := r[column].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

// Int returns the named column as int, or 0 when absent or NULL.
func (r Row) Int(column string) int {
	return int(r.Int64(column))
}

// String returns the named column as a string, or "" when absent or NULL.
func (r Row) String(column string) string {
	switch v := r[column].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}

// NullString returns the named column as *string, nil when NULL or absent.
func (r Row) NullString(column string) *string {
	switch v := r[column].(type) {
	case string:
		return &v
	case []byte:
		s := string(v)
		return &s
	default:
		return nil
	}
}

// sqliteTimeFormats covers the shapes CURRENT_TIMESTAMP and client-written
// timestamps take in SQLite text columns.
var sqliteTimeFormats = []string{
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
}

// Time returns the named column as time.Time, zero when absent or unparseable.
func (r Row) Time(column string) time.Time {
	switch v := r[column].(type) {
	case time.Time:
		return v
	case string:
		for _, format := range sqliteTimeFormats {
			if t, err := time.Parse(format, v); err == nil {
				return t
			}
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}

// Result is the normalized outcome of a mutating statement. InsertedID is
// populated only for single-row inserts into tables with an integer identity.
type Result struct {
	RowsAffected int64
	InsertedID   int64
}

// rebind rewrites `?` placeholders to `$1..$n` for PostgreSQL. Placeholders
// inside single-quoted SQL literals are left alone, so a query like
// `WHERE title = '?'` survives the rewrite.
func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isInsert(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "INSERT")
}

// FetchAll runs a query and returns every row as a column-name keyed map, in
// whatever order the statement's own ORDER BY dictates.
func (s *Store) FetchAll(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	var results []Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return results, nil
}

// FetchOne runs a query and returns the first row, or (nil, nil) when the
// result set is empty. Zero rows is not an error.
func (s *Store) FetchOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.FetchAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Execute runs a mutating statement. For inserts, the new identity comes from
// LastInsertId on SQLite and from an appended RETURNING clause on PostgreSQL,
// where the driver does not support LastInsertId.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	if s.dialect == DialectPostgres && isInsert(query) {
		var id int64
		bound := s.rebind(query) + " RETURNING id"
		if err := s.db.QueryRowContext(ctx, bound, args...).Scan(&id); err != nil {
			return Result{}, fmt.Errorf("insert failed: %w", err)
		}
		return Result{RowsAffected: 1, InsertedID: id}, nil
	}

	res, err := s.db.ExecContext(ctx, s.rebind(query), args...)
	if err != nil {
		return Result{}, fmt.Errorf("statement failed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read rows affected: %w", err)
	}

	result := Result{RowsAffected: affected}
	if isInsert(query) {
		if id, err := res.LastInsertId(); err == nil {
			result.InsertedID = id
		}
	}
	return result, nil
}

// Exec runs raw DDL with no parameters on the active backend.
func (s *Store) Exec(ctx context.Context, query string) error {
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("statement failed: %w", err)
	}
	return nil
}
