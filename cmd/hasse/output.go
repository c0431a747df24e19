// SPDX-License-Identifier: MIT
package main

import (
	"io"
	"os"
)

// nopCloser keeps stdout open after a subcommand finishes.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns the -o file, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	return os.Create(path)
}
