package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationKindInvoiceIssued = "invoice_issued"

	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}

// InvoiceIssuedPayload is the body of an invoice_issued job.
type InvoiceIssuedPayload struct {
	InvoiceID  uuid.UUID `json:"invoice_id"`
	BookingID  uuid.UUID `json:"booking_id"`
	Number     string    `json:"number"`
	ClientName string    `json:"client_name"`
	Email      string    `json:"email"`
	Total      string    `json:"total"`
	IssuedOn   string    `json:"issued_on"`
}
