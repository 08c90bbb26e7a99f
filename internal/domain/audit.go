package domain

import "time"

// AuditOperation тип операции в журнале
type AuditOperation string

const (
	AuditOperationCreate AuditOperation = "create"
	AuditOperationCancel AuditOperation = "cancel"
)

// AuditEntry запись журнала операций
// Журнал append-only: записи никогда не редактируются и не удаляются.
// Details содержит снимок состояния бронирования на момент операции,
// а не ссылку на живой объект
type AuditEntry struct {
	ID        string
	Timestamp time.Time
	Operation AuditOperation
	Details   map[string]string
}
