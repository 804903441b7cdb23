// SPDX-License-Identifier: EPL-2.0

package chain

import "fmt"

// Level classifies a Diagnostic.
type Level int

const (
	// LevelInfo marks advisory output with no behavior change.
	LevelInfo Level = iota
	// LevelWarn marks a recoverable problem the run worked around.
	LevelWarn
)

// Diagnostic is one non-fatal finding produced while building a chain.
// The planner and assembler return these instead of printing, so callers
// decide how (and whether) to surface them.
type Diagnostic struct {
	Level   Level
	Message string
}

func (d Diagnostic) String() string {
	if d.Level == LevelWarn {
		return "warning: " + d.Message
	}
	return d.Message
}

// Infof builds an advisory diagnostic.
func Infof(format string, args ...any) Diagnostic {
	return Diagnostic{Level: LevelInfo, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning diagnostic.
func Warnf(format string, args ...any) Diagnostic {
	return Diagnostic{Level: LevelWarn, Message: fmt.Sprintf(format, args...)}
}
