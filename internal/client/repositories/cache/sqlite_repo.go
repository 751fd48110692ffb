package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/spinadmin/internal/dbx"
	"github.com/klauspost/compress/zstd"
)

// Encoder and decoder are safe for concurrent EncodeAll/DecodeAll calls.
var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil)
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) (*Envelope, error) {
	var (
		compressed []byte
		capturedMs int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, captured_at FROM cache_envelopes WHERE key = ?`, key,
	).Scan(&compressed, &capturedMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache envelope[%s]: %w", key, err)
	}

	payload, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress cache envelope[%s]: %w", key, err)
	}

	return &Envelope{Key: key, Payload: payload, CapturedAt: time.UnixMilli(capturedMs)}, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, env Envelope) error {
	compressed := encoder.EncodeAll(env.Payload, nil)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cache_envelopes (key, payload, captured_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, captured_at = excluded.captured_at
	`, env.Key, compressed, env.CapturedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to put cache envelope[%s]: %w", env.Key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cache_envelopes WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cache envelope[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cache_envelopes`); err != nil {
		return fmt.Errorf("failed to clear cache envelopes: %w", err)
	}
	return nil
}
