package console

import "io"

// Console bundles the process streams so commands and the interactive
// shell can be driven from tests.
type Console struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}
