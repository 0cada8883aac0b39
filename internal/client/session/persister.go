package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/farmchainx/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/farmchainx/internal/common"
	"github.com/dmitrijs2005/farmchainx/internal/dbx"
)

// Persister is the durable side of the store.
type Persister interface {
	// LoadSession returns the serialized session, or nil when absent.
	LoadSession(ctx context.Context) ([]byte, error)
	// LoadRole returns the last known role, or "" when absent.
	LoadRole(ctx context.Context) (string, error)
	// SaveSession writes the session and its role atomically.
	SaveSession(ctx context.Context, raw []byte, role string) error
	// DeleteSession removes the session but keeps the last known role.
	DeleteSession(ctx context.Context) error
	// Clear removes the session and the last known role.
	Clear(ctx context.Context) error
}

// SQLitePersister keeps the session in the metadata table.
type SQLitePersister struct {
	db    *sql.DB
	store metadata.Store
}

var _ Persister = (*SQLitePersister)(nil)

func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{db: db, store: metadata.NewSQLiteStore(db)}
}

func (p *SQLitePersister) LoadSession(ctx context.Context) ([]byte, error) {
	return p.store.Get(ctx, common.StorageKeyUser)
}

func (p *SQLitePersister) LoadRole(ctx context.Context) (string, error) {
	v, err := p.store.Get(ctx, common.StorageKeyRole)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (p *SQLitePersister) SaveSession(ctx context.Context, raw []byte, role string) error {
	user := metadata.Entry{Key: common.StorageKeyUser, Value: raw}
	if role != "" {
		return p.store.Put(ctx, user, metadata.Entry{Key: common.StorageKeyRole, Value: []byte(role)})
	}
	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := metadata.NewSQLiteStore(tx)
		if err := store.Put(ctx, user); err != nil {
			return err
		}
		return store.Remove(ctx, common.StorageKeyRole)
	})
}

func (p *SQLitePersister) DeleteSession(ctx context.Context) error {
	return p.store.Remove(ctx, common.StorageKeyUser)
}

func (p *SQLitePersister) Clear(ctx context.Context) error {
	return p.store.Remove(ctx, common.StorageKeyUser, common.StorageKeyRole)
}
