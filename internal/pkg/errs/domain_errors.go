package errs

// Domain-specific sentinel errors shared by the command and query layers.
// Handlers match these with errs.Is to pick a status code.
var (
	// Range / availability errors
	ErrInvalidRange    = New("invalid date range")
	ErrBookingConflict = New("booking conflict")

	// Booking lifecycle errors
	ErrBookingNotFound          = New("booking not found")
	ErrInvalidStatusTransition  = New("invalid booking status transition")
	ErrBookingNotDeletable      = New("booking cannot be deleted in its current status")
	ErrBookingAlreadyCheckedOut = New("booking already checked out")

	// Invoice errors
	ErrInvoiceNotFound    = New("invoice not found")
	ErrDuplicateInvoice   = New("invoice already issued for booking")
	ErrPreconditionFailed = New("booking must be checked out before invoicing")

	// Lookup errors
	ErrRoomNotFound     = New("room not found")
	ErrClientNotFound   = New("client not found")
	ErrEmployeeNotFound = New("employee not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
