package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/farmchainx/internal/dbx"
)

// ErrNilValue rejects a Put entry without a value; use Remove instead.
var ErrNilValue = errors.New("metadata: nil value")

// SQLiteStore is Store over the metadata table of a *sql.DB or *sql.Tx.
type SQLiteStore struct {
	db dbx.DBTX
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, opError("get", []string{key}, err)
	}
	return value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	keys := make([]string, len(entries))
	args := make([]any, 0, 2*len(entries))
	for i, e := range entries {
		if e.Value == nil {
			return opError("put", []string{e.Key}, ErrNilValue)
		}
		keys[i] = e.Key
		args = append(args, e.Key, e.Value)
	}

	q := `INSERT INTO metadata (key, value) VALUES ` + placeholders(len(entries), "(?, ?)") +
		` ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return opError("put", keys, err)
	}
	return nil
}

// Remove deletes keys; absent keys are not an error.
func (s *SQLiteStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	q := `DELETE FROM metadata WHERE key IN (` + placeholders(len(keys), "?") + `)`
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return opError("remove", keys, err)
	}
	return nil
}

func placeholders(n int, one string) string {
	return strings.TrimSuffix(strings.Repeat(one+", ", n), ", ")
}

func opError(op string, keys []string, err error) error {
	return fmt.Errorf("metadata %s [%s]: %w", op, strings.Join(keys, " "), err)
}
