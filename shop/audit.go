package shop

import (
	"context"
	"fmt"
	"os"

	"go-ecommerce-console/models"
)

// AuditSink receives every order after it has been recorded in the ledger.
// Failures are reported back but never undo the order.
type AuditSink interface {
	Record(ctx context.Context, order models.Order) error
}

// AuditLine formats the audit log entry for order.
func AuditLine(order models.Order) string {
	return fmt.Sprintf("[LOG] -> Order ID: %d has been successfully checked out and paid using %s",
		order.ID(), order.PaymentMethod())
}

// FileAuditLog appends one plain-text line per order. The file is opened and
// closed on every write.
type FileAuditLog struct {
	Path string
}

func NewFileAuditLog(path string) *FileAuditLog {
	return &FileAuditLog{Path: path}
}

func (f *FileAuditLog) Record(_ context.Context, order models.Order) (err error) {
	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close log file: %w", cerr)
		}
	}()

	if _, err = fmt.Fprintln(file, AuditLine(order)); err != nil {
		return fmt.Errorf("failed to log order: %w", err)
	}
	return nil
}
