// Copyright 2026 The argh Authors.

package argh

import (
	"fmt"
	"strings"
)

// Usage returns the option table: one line per option in registration
// order. The name, default and description columns are each left-justified
// and padded to the longest entry in the column plus one. The line ends
// with REQUIRED or NOT REQUIRED. The result has a trailing newline.
func (a *Argh) Usage() string {
	var nameW, defW, msgW int
	for _, d := range a.options {
		nameW = max(nameW, len(d.name()))
		defW = max(defW, len(d.defaultText()))
		msgW = max(msgW, len(d.message()))
	}

	var b strings.Builder
	for _, d := range a.options {
		tag := "NOT REQUIRED"
		if d.required() {
			tag = "REQUIRED"
		}
		fmt.Fprintf(&b, "%-*s%-*s%-*s%s\n",
			nameW+1, d.name(),
			defW+1, d.defaultText(),
			msgW+1, d.message(),
			tag)
	}
	return b.String()
}
