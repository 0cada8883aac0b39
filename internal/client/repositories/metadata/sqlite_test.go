package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/farmchainx/internal/dbx"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func get(t *testing.T, s *SQLiteStore, key string) []byte {
	t.Helper()
	v, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func TestPutAndGet_SessionPayload(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	payload := []byte(`{"id":7,"name":"Asha","role":"FARMER"}`)
	require.NoError(t, s.Put(context.Background(), Entry{Key: "user", Value: payload}))

	assert.Equal(t, payload, get(t, s, "user"))
}

func TestGet_Missing_ReturnsNilNil(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	assert.Nil(t, get(t, s, "user"))
}

func TestPut_ManyUpsertsInOneCall(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, Entry{Key: "userRole", Value: []byte("BUYER")}))
	require.NoError(t, s.Put(ctx,
		Entry{Key: "user", Value: []byte(`{"id":"U1"}`)},
		Entry{Key: "userRole", Value: []byte("FARMER")},
	))

	assert.Equal(t, []byte("FARMER"), get(t, s, "userRole"))
	assert.Equal(t, []byte(`{"id":"U1"}`), get(t, s, "user"))
	require.NoError(t, s.Put(ctx))
}

func TestPut_NilValueIsRejectedWithoutWriting(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	err := s.Put(context.Background(),
		Entry{Key: "userRole", Value: []byte("BUYER")},
		Entry{Key: "user"},
	)
	require.ErrorIs(t, err, ErrNilValue)
	assert.Nil(t, get(t, s, "userRole"))
}

func TestRemove_ManyAndAbsent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Put(ctx,
		Entry{Key: "user", Value: []byte("{}")},
		Entry{Key: "userRole", Value: []byte("BUYER")},
		Entry{Key: "other", Value: []byte("x")},
	))
	require.NoError(t, s.Remove(ctx, "user", "userRole", "missing"))

	assert.Nil(t, get(t, s, "user"))
	assert.Nil(t, get(t, s, "userRole"))
	assert.Equal(t, []byte("x"), get(t, s, "other"))

	require.NoError(t, s.Remove(ctx))
}

func TestRolledBackTxLeavesNoTrace(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := NewSQLiteStore(tx).Put(ctx, Entry{Key: "user", Value: []byte("{}")}); err != nil {
			return err
		}
		return NewSQLiteStore(tx).Put(ctx, Entry{Key: "userRole"})
	})
	require.ErrorIs(t, err, ErrNilValue)
	assert.Nil(t, get(t, NewSQLiteStore(db), "user"))
}

func TestErrorsNameOperationAndKeys(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := s.Get(ctx, "user")
	require.ErrorContains(t, err, "metadata get [user]")

	require.ErrorContains(t, s.Put(ctx, Entry{Key: "user", Value: []byte("v")}, Entry{Key: "userRole", Value: []byte("r")}),
		"metadata put [user userRole]")
	require.ErrorContains(t, s.Remove(ctx, "user", "userRole"), "metadata remove [user userRole]")
}
