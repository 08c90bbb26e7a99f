package get_audit_log

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/reports/models"
)

type ReportsService interface {
	AuditLog(ctx context.Context) ([]*models.AuditEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
