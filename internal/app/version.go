package app

import (
	"fmt"
	"io"
)

// Version is the application version, overridable at link time with
// -ldflags "-X github.com/agbru/statline/internal/app.Version=...".
var Version = "0.3.0"

// HasVersionFlag reports whether --version (or -version) appears in args.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "statline v%s\n", Version)
}
