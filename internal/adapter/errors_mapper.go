package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// mapTransportError converts a failed GET into ErrImageUnreachable, joined
// with ErrImageTimeout when a deadline was hit.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w: %w", ErrImageUnreachable, ErrImageTimeout, err)
	}

	return fmt.Errorf("%w: %w", ErrImageUnreachable, err)
}
