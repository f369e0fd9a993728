package report

import "errors"

var (
	// ErrBatchNotFound is returned when a report is requested for a batch id
	// that does not exist. Propagated to the caller, never retried.
	ErrBatchNotFound = errors.New("batch not found")

	// ErrInvalidSampleDate is returned when a sample date precedes the batch
	// stocking date.
	ErrInvalidSampleDate = errors.New("sample date precedes stocking date")

	// ErrDuplicateSampleDate is returned when two samples of one batch share a
	// cultivation day, which would break the daily gain calculation.
	ErrDuplicateSampleDate = errors.New("duplicate sample date for batch")
)
