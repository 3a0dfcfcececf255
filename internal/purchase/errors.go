package purchase

import "errors"

// Validation kinds for draft operations. All are local, pre-submission and
// recoverable by editing the draft.
const (
	KindMissingFields     = "missing-fields"
	KindDuplicateProduct  = "duplicate-product"
	KindInsufficientStock = "insufficient-stock"
	KindNoClient          = "no-client"
	KindEmptyOrder        = "empty-order"
)

// ValidationError rejects a draft operation before anything reaches the
// store. The draft is unchanged whenever one is returned.
type ValidationError struct {
	Kind string
}

func (e *ValidationError) Error() string { return "invalid purchase: " + e.Kind }

// IsValidation reports whether err is a ValidationError of the given kind.
func IsValidation(err error, kind string) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == kind
}

// SubmissionError means the store rejected the order or the transport
// failed. The draft is preserved so the user can retry or edit.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string { return "purchase submission failed: " + e.Err.Error() }
func (e *SubmissionError) Unwrap() error { return e.Err }

// ErrSubmitInProgress rejects a second submit while one is outstanding.
// Double submits are refused, not queued.
var ErrSubmitInProgress = errors.New("a submission is already in progress")
