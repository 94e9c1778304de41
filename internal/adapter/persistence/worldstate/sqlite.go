package worldstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bill_ledger/internal/usecase/interfaces"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS world_state (
	state_key   TEXT PRIMARY KEY NOT NULL,
	state_value BLOB NOT NULL
) WITHOUT ROWID`

// SQLiteWorldState stores the world state in a single SQLite table. Each
// invocation runs inside a database transaction; the default BINARY collation
// orders keys bytewise, which is the native range order.
type SQLiteWorldState struct {
	db *sql.DB
}

var _ interfaces.IWorldStateProvider = (*SQLiteWorldState)(nil)

// NewSQLiteWorldState takes ownership of db and makes sure the table exists.
func NewSQLiteWorldState(ctx context.Context, db *sql.DB) (*SQLiteWorldState, error) {
	if db == nil {
		return nil, errors.New("world state: nil sqlite handle")
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("world state: ensure sqlite schema: %w", err)
	}
	return &SQLiteWorldState{db: db}, nil
}

func (s *SQLiteWorldState) Execute(ctx context.Context, fn func(stub interfaces.IWorldState) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("world state: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(&sqliteTxState{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("world state: commit: %w", err)
	}
	return nil
}

func (s *SQLiteWorldState) Close() error {
	return s.db.Close()
}

// sqliteTxState is the per-invocation stub. The transaction already gives
// read-your-writes, so nothing is buffered.
type sqliteTxState struct {
	tx *sql.Tx
}

func (t *sqliteTxState) GetState(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	var v []byte
	err := t.tx.QueryRowContext(ctx, `SELECT state_value FROM world_state WHERE state_key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("world state: get %s: %w", key, err)
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}

func (t *sqliteTxState) PutState(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if value == nil {
		return ErrNilValue
	}
	_, err := t.tx.ExecContext(ctx,
		`INSERT INTO world_state (state_key, state_value) VALUES (?, ?)
		 ON CONFLICT(state_key) DO UPDATE SET state_value = excluded.state_value`,
		key, value)
	if err != nil {
		return fmt.Errorf("world state: put %s: %w", key, err)
	}
	return nil
}

func (t *sqliteTxState) DelState(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM world_state WHERE state_key = ?`, key); err != nil {
		return fmt.Errorf("world state: delete %s: %w", key, err)
	}
	return nil
}

func (t *sqliteTxState) GetStateByRange(ctx context.Context, startKey, endKey string) (interfaces.IStateIterator, error) {
	rows, err := t.tx.QueryContext(ctx,
		`SELECT state_key, state_value FROM world_state
		 WHERE state_key >= ? AND (? = '' OR state_key < ?)
		 ORDER BY state_key`,
		startKey, endKey, endKey)
	if err != nil {
		return nil, fmt.Errorf("world state: range [%q,%q): %w", startKey, endKey, err)
	}
	return &rowsIterator{rows: rows}, nil
}

// rowsIterator streams a range result straight from the cursor.
type rowsIterator struct {
	rows    *sql.Rows
	pending *interfaces.StateKV
	err     error
	done    bool
}

func (it *rowsIterator) HasNext() bool {
	if it.pending != nil || it.err != nil {
		return true
	}
	if it.done {
		return false
	}
	if !it.rows.Next() {
		it.done = true
		if err := it.rows.Err(); err != nil {
			it.err = err
			return true
		}
		return false
	}
	var kv interfaces.StateKV
	if err := it.rows.Scan(&kv.Key, &kv.Value); err != nil {
		it.err = err
		return true
	}
	it.pending = &kv
	return true
}

func (it *rowsIterator) Next() (interfaces.StateKV, error) {
	if !it.HasNext() {
		return interfaces.StateKV{}, errors.New("world state: iterator exhausted")
	}
	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true
		return interfaces.StateKV{}, fmt.Errorf("world state: range: %w", err)
	}
	kv := *it.pending
	it.pending = nil
	return kv, nil
}

func (it *rowsIterator) Close() error {
	return it.rows.Close()
}
