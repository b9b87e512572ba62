package errors

import "fmt"

// Wrap adds context to err. It returns nil if err is nil.
//
//	if err := client.CreateRun(ctx, batch); err != nil {
//	    return errors.Wrap(err, "submit batch")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
