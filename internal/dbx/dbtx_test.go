package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// openSlots returns a database with a key/value table shaped like the
// session metadata, seeded with an admin login.
func openSlots(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE slots (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO slots VALUES ('adminToken', 'a-1'), ('userRole', 'admin')`)
	require.NoError(t, err)
	return db
}

func slots(t *testing.T, db *sql.DB) map[string]string {
	t.Helper()
	rows, err := db.Query(`SELECT key, value FROM slots`)
	require.NoError(t, err)
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k, v string
		require.NoError(t, rows.Scan(&k, &v))
		out[k] = v
	}
	require.NoError(t, rows.Err())
	return out
}

// switchToExecutive performs the three writes of a role switch; fail makes
// the last one return an error.
func switchToExecutive(fail error) func(ctx context.Context, tx DBTX) error {
	return func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO slots VALUES ('executiveToken', 'e-1')`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM slots WHERE key = 'adminToken'`); err != nil {
			return err
		}
		if fail != nil {
			return fail
		}
		_, err := tx.ExecContext(ctx, `UPDATE slots SET value = 'executive' WHERE key = 'userRole'`)
		return err
	}
}

func TestWithTx_RoleSwitch(t *testing.T) {
	before := map[string]string{"adminToken": "a-1", "userRole": "admin"}
	after := map[string]string{"executiveToken": "e-1", "userRole": "executive"}

	tests := []struct {
		name    string
		fail    error
		want    map[string]string
		wantErr bool
	}{
		{name: "all writes commit together", want: after},
		{name: "a late failure keeps the previous login", fail: errors.New("disk full"), want: before, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openSlots(t)

			err := WithTx(context.Background(), db, nil, switchToExecutive(tt.fail))
			if tt.wantErr {
				require.ErrorIs(t, err, tt.fail)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, slots(t, db))
		})
	}
}

func TestWithTx_PanicRollsBackAndPropagates(t *testing.T) {
	db := openSlots(t)

	assert.PanicsWithValue(t, "decode role", func() {
		_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
			_, err := tx.ExecContext(ctx, `DELETE FROM slots`)
			require.NoError(t, err)
			panic("decode role")
		})
	})
	assert.Len(t, slots(t, db), 2)
}

func TestWithTx_ReadsOwnWrites(t *testing.T) {
	db := openSlots(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `UPDATE slots SET value = 'a-2' WHERE key = 'adminToken'`); err != nil {
			return err
		}
		var v string
		if err := tx.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = 'adminToken'`).Scan(&v); err != nil {
			return err
		}
		assert.Equal(t, "a-2", v)
		return nil
	})
	require.NoError(t, err)
}

func TestWithTx_BeginFailsOnClosedDB(t *testing.T) {
	db := openSlots(t)
	require.NoError(t, db.Close())

	called := false
	err := WithTx(context.Background(), db, nil, func(context.Context, DBTX) error {
		called = true
		return nil
	})
	require.ErrorContains(t, err, "begin tx")
	assert.False(t, called)
}
