package ratefn

import "fmt"

var ErrMaxAttempts = fmt.Errorf("max attempts reached")

// Retry calls fn up to maxAttempts times, returning nil on the first
// success. After the final failure it returns ErrMaxAttempts wrapping the
// last error.
func Retry(maxAttempts int, fn func() error) error {
	if maxAttempts < 1 {
		return fmt.Errorf("%w: %d", ErrMaxAttempts, maxAttempts)
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %d, %w", ErrMaxAttempts, maxAttempts, err)
}
