package services

import (
	"context"
	"database/sql"
	"fmt"
)

// Лимит страницы по умолчанию, если задан только offset.
const defaultListLimit = 100

// runInTx выполняет fn внутри одной транзакции: rollback при ошибке или
// панике, commit при успехе. Сессия всегда освобождается.
func runInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	err = fn(tx)
	return err
}
