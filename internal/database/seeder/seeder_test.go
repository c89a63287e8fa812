package seeder

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"grad-match/internal/database"
	"grad-match/internal/domain/posting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeDB struct {
	columns   map[string][]string
	execs     []string
	committed int
}

func (f *fakeDB) Ping(context.Context) error { return nil }
func (f *fakeDB) Close() error               { return nil }
func (f *fakeDB) SQLDB() *sql.DB             { return nil }

func (f *fakeDB) Exec(_ context.Context, query string, _ ...any) (int64, error) {
	f.execs = append(f.execs, query)
	return 1, nil
}

func (f *fakeDB) Query(_ context.Context, _ string, args ...any) (database.Rows, error) {
	table, _ := args[0].(string)
	return &fakeRows{values: f.columns[table], pos: -1}, nil
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) database.Row { return nil }

func (f *fakeDB) Begin(context.Context) (database.Tx, error) { return &fakeTx{db: f}, nil }

type fakeTx struct{ db *fakeDB }

func (t *fakeTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return t.db.Exec(ctx, query, args...)
}
func (t *fakeTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.db.Query(ctx, query, args...)
}
func (t *fakeTx) QueryRow(context.Context, string, ...any) database.Row { return nil }
func (t *fakeTx) Commit(context.Context) error                          { t.db.committed++; return nil }
func (t *fakeTx) Rollback(context.Context) error                        { return nil }

type fakeRows struct {
	values []string
	pos    int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Next() bool { r.pos++; return r.pos < len(r.values) }
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Scan(dest ...any) error {
	p, ok := dest[0].(*string)
	if !ok {
		return errors.New("unexpected dest")
	}
	*p = r.values[r.pos]
	return nil
}

func catalogColumns() map[string][]string {
	return map[string][]string{
		"candidates": {"id", "national_id", "name", "category", "profile", "role", "specialization", "skills", "record_hash", "created_at"},
		"postings": {"id", "title", "description", "required_category", "required_profile", "salary", "location",
			"required_role", "required_specialization", "required_skills", "priority_tier", "created_at"},
	}
}

func TestRunner_SeedsCatalog(t *testing.T) {
	db := &fakeDB{columns: catalogColumns()}

	err := Runner{Seeders: Defaults(bcrypt.MinCost)}.Run(context.Background(), db)
	require.NoError(t, err)

	assert.Equal(t, 2, db.committed)
	assert.Len(t, db.execs, 14+28)
	assert.True(t, strings.Contains(db.execs[0], "INSERT INTO candidates"))
	assert.True(t, strings.Contains(db.execs[len(db.execs)-1], "INSERT INTO postings"))
}

func TestEnsureTableColumns_ReportsMissing(t *testing.T) {
	db := &fakeDB{columns: map[string][]string{"postings": {"id", "title"}}}

	err := EnsureTableColumns(context.Background(), db, "postings", "id", "salary", "location")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postings.salary")
	assert.Contains(t, err.Error(), "postings.location")
}

func TestPostingsSeeder_RejectsInvalidPriority(t *testing.T) {
	db := &fakeDB{columns: catalogColumns()}
	s := PostingsSeeder{Postings: []posting.Posting{{ID: 1, Title: "x", PriorityTier: 7}}}

	_, err := s.Run(context.Background(), db)
	assert.ErrorIs(t, err, posting.ErrInvalidPriority)
	assert.Zero(t, db.committed)
}

func TestRunner_NilDB(t *testing.T) {
	assert.Error(t, Runner{}.Run(context.Background(), nil))
}
