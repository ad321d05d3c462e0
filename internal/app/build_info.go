package app

import (
	"fmt"
	"io"
)

// BuildInfo is stamped into each binary at link time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Print writes the build info in the launcher's banner format.
func (b BuildInfo) Print(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", orNA(b.Version))
	fmt.Fprintf(w, "Build date: %s\n", orNA(b.Date))
	fmt.Fprintf(w, "Build commit: %s\n", orNA(b.Commit))
}
