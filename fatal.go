package fontengine

import (
	"fmt"
	"os"
	"strings"
)

// FatalError describes a failure the client cannot continue from.
type FatalError struct {
	// Op is the resolver step that failed.
	Op string
	// Mode and Size identify the request, when there is one.
	Mode Mode
	Size uint32
	// PixelSize is the computed pixel size, when it was computed.
	PixelSize int
	// Paths lists the font files that were tried.
	Paths []string
	// Detail carries extra context such as the display density.
	Detail string
	// Err is one of the package sentinel errors.
	Err error
}

// Error implements error.
func (e *FatalError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v", e.Op, e.Err)
	if e.Op != "skin" {
		fmt.Fprintf(&b, " (mode %s, size %d, %dpx)", e.Mode, e.Size, e.PixelSize)
	}
	if len(e.Paths) > 0 {
		fmt.Fprintf(&b, "; tried %s", strings.Join(e.Paths, ", "))
	}
	if e.Detail != "" {
		b.WriteString("; ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the sentinel error.
func (e *FatalError) Unwrap() error {
	return e.Err
}

// FatalHandler is called with unrecoverable errors. A handler that
// returns makes the resolver panic with the error, so a fatal condition
// never reaches the caller as a nil font.
type FatalHandler func(err *FatalError)

// fatalExitCode is the process status used by ExitOnFatal.
const fatalExitCode = 2

// ExitOnFatal is the default FatalHandler. It prints the diagnostic to
// stderr and exits the process.
func ExitOnFatal(err *FatalError) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(fatalExitCode)
}

// PanicOnFatal is a FatalHandler that panics with the error. It suits
// hosts that recover at the top of their UI loop, and tests.
func PanicOnFatal(err *FatalError) {
	panic(err)
}

// raise logs err and hands it to the fatal handler.
func (r *Resolver) raise(err *FatalError) {
	r.log().Error("unrecoverable font error",
		"op", err.Op,
		"mode", err.Mode,
		"size", err.Size,
		"pixels", err.PixelSize,
		"paths", err.Paths,
		"detail", err.Detail,
		"err", err.Err)
	r.onFatal(err)
	panic(err)
}
