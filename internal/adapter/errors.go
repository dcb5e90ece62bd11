package adapter

import "errors"

var (
	ErrEmptyImageURL     = errors.New("image url is empty")
	ErrMalformedImageURL = errors.New("image url is malformed")
	ErrImageUnreachable  = errors.New("image url is unreachable")

	// ErrImageTimeout is joined with ErrImageUnreachable when the probe ran
	// out of time.
	ErrImageTimeout = errors.New("image probe timed out")
)
