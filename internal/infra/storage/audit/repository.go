package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Repository postgres-журнал операций
// Только дозапись и полный дамп: записи никогда не редактируются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
func (r *Repository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return fmt.Errorf("%w: Append - marshal details: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("audit_log").
		Columns("id", "ts", "operation", "details").
		Values(entry.ID, entry.Timestamp, entry.Operation, details).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// LoadAll возвращает весь журнал в порядке записи
func (r *Repository) LoadAll(ctx context.Context) ([]*domain.AuditEntry, error) {
	query, args, err := psqlbuilder.Select("id", "ts", "operation", "details").
		From("audit_log").
		OrderBy("ts ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0)

	for rows.Next() {
		var entry domain.AuditEntry
		var details []byte

		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Operation, &details); err != nil {
			return nil, fmt.Errorf("%w: LoadAll - scan row: %v", ErrScanRow, err)
		}

		if err := json.Unmarshal(details, &entry.Details); err != nil {
			return nil, fmt.Errorf("%w: LoadAll - unmarshal details: %v", ErrScanRow, err)
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadAll - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
