package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLExecutor покрывает *sql.DB и *sql.Tx: методы репозиториев выполняются
// либо на пуле, либо внутри транзакции сервиса.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError // Возвращаем переданную ошибку "не найдено"
	}
	return nil
}
