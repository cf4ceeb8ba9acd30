package database

import "database/sql"

// withTx runs fn inside a transaction. The transaction commits only if fn
// returns nil; on error or panic it is rolled back, so a multi-row write
// never leaves partial state behind and no transaction is left open.
func (db *PgParlorRepository) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true

	return nil
}
