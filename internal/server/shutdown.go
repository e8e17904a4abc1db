package server

import (
	"io"

	"go.uber.org/multierr"
)

// CloseAll closes every closer, in order, and returns the combined error.
func CloseAll(closers ...io.Closer) error {
	var err error
	for _, c := range closers {
		err = multierr.Append(err, c.Close())
	}
	return err
}
