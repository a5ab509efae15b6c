package mailfleet

import "errors"

var (
	// ErrInvalidConfig indicates the campaign configuration failed
	// validation. Detected before any network activity; no outcomes are
	// produced.
	ErrInvalidConfig = errors.New("invalid campaign configuration")

	// ErrConnectionFailed indicates the mail session could not be opened.
	// Fatal to the whole run; no recipients are processed.
	ErrConnectionFailed = errors.New("failed to open mail session")
)
