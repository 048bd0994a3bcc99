package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.InitSchema(context.Background()))
	return store
}

func TestRebindSQLite(t *testing.T) {
	store := &Store{dialect: DialectSQLite}

	// SQLite keeps ? placeholders untouched
	query := "SELECT * FROM projects WHERE id = ? AND category = ?"
	assert.Equal(t, query, store.rebind(query))
}

func TestRebindPostgres(t *testing.T) {
	store := &Store{dialect: DialectPostgres}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "single placeholder",
			query: "SELECT * FROM projects WHERE id = ?",
			want:  "SELECT * FROM projects WHERE id = $1",
		},
		{
			name:  "placeholders numbered left to right",
			query: "UPDATE projects SET title = ?, description = ?, image = ?, category = ? WHERE id = ?",
			want:  "UPDATE projects SET title = $1, description = $2, image = $3, category = $4 WHERE id = $5",
		},
		{
			name:  "no placeholders",
			query: "SELECT * FROM projects",
			want:  "SELECT * FROM projects",
		},
		{
			name:  "question mark inside string literal survives",
			query: "SELECT * FROM videos WHERE title = 'what?' AND id = ?",
			want:  "SELECT * FROM videos WHERE title = 'what?' AND id = $1",
		},
		{
			name:  "ten placeholders get two-digit numbers",
			query: "INSERT INTO t (a,b,c,d,e,f,g,h,i,j) VALUES (?,?,?,?,?,?,?,?,?,?)",
			want:  "INSERT INTO t (a,b,c,d,e,f,g,h,i,j) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.rebind(tt.query))
		})
	}
}

func TestIsInsert(t *testing.T) {
	assert.True(t, isInsert("INSERT INTO projects (title) VALUES (?)"))
	assert.True(t, isInsert("  insert into videos (title) values (?)"))
	assert.False(t, isInsert("UPDATE projects SET title = ?"))
	assert.False(t, isInsert("DELETE FROM projects WHERE id = ?"))
	assert.False(t, isInsert("SELECT * FROM projects"))
}

func TestExecuteInsertAssignsIncreasingIDs(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, err := store.Execute(ctx,
		"INSERT INTO videos (title, url, description) VALUES (?, ?, ?)",
		"A", "http://example.com/a", "first")
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.RowsAffected)
	assert.Greater(t, first.InsertedID, int64(0))

	second, err := store.Execute(ctx,
		"INSERT INTO videos (title, url, description) VALUES (?, ?, ?)",
		"B", "http://example.com/b", "second")
	require.NoError(t, err)
	assert.Greater(t, second.InsertedID, first.InsertedID)
}

func TestExecuteRowsAffected(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Execute(ctx,
		"INSERT INTO contacts (name, email, message) VALUES (?, ?, ?)",
		"Ada", "ada@example.com", "hello")
	require.NoError(t, err)

	res, err := store.Execute(ctx, "DELETE FROM contacts WHERE id = ?", int64(9999))
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.RowsAffected)

	res, err = store.Execute(ctx, "DELETE FROM contacts")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.RowsAffected)
}

func TestFetchOneReturnsNilOnNoRows(t *testing.T) {
	store := setupTestStore(t)

	row, err := store.FetchOne(context.Background(), "SELECT * FROM projects WHERE id = ?", int64(42))
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestFetchAllRowShapes(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	res, err := store.Execute(ctx,
		"INSERT INTO contact_info (type, value, label, display_order) VALUES (?, ?, ?, ?)",
		"phone", "123456", nil, 3)
	require.NoError(t, err)

	rows, err := store.FetchAll(ctx, "SELECT * FROM contact_info WHERE id = ?", res.InsertedID)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, res.InsertedID, row.Int64("id"))
	assert.Equal(t, "phone", row.String("type"))
	assert.Equal(t, "123456", row.String("value"))
	assert.Nil(t, row.NullString("label"))
	assert.Equal(t, 3, row.Int("display_order"))
	assert.False(t, row.Time("created_at").IsZero())
	assert.WithinDuration(t, time.Now().UTC(), row.Time("created_at"), time.Minute)
}

func TestExecuteMalformedSQLFails(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Execute(context.Background(), "INSERT INTO nope (x) VALUES (?)", 1)
	assert.Error(t, err)
}

func TestInitSchemaIdempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Second run must not fail or wipe data
	_, err := store.Execute(ctx,
		"INSERT INTO projects (title, description, image, category) VALUES (?, ?, ?, ?)",
		"T", "D", "http://x/i.jpg", "C")
	require.NoError(t, err)

	require.NoError(t, store.InitSchema(ctx))

	rows, err := store.FetchAll(ctx, "SELECT * FROM projects")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestContactInfoTypeCheckConstraint(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Execute(context.Background(),
		"INSERT INTO contact_info (type, value) VALUES (?, ?)", "fax", "555")
	assert.Error(t, err)
}
