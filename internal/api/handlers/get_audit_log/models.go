package get_audit_log

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/reports/models"
)

// AuditEntryResponse HTTP response model записи журнала
type AuditEntryResponse struct {
	ID        string            `json:"id"`
	Timestamp string            `json:"timestamp"`
	Operation string            `json:"operation"`
	Details   map[string]string `json:"details"`
}

// AuditLogResponse HTTP response model журнала
type AuditLogResponse struct {
	Entries []*AuditEntryResponse `json:"entries"`
}

// FromServiceEntries конвертирует записи сервиса в HTTP response
func FromServiceEntries(entries []*models.AuditEntryResponse) *AuditLogResponse {
	result := make([]*AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, &AuditEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Operation: e.Operation,
			Details:   e.Details,
		})
	}
	return &AuditLogResponse{Entries: result}
}
