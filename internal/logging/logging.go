// Package logging provides the structured, leveled logger every long-lived
// component (loader, evaluator, REPL) writes lifecycle events through,
// grounded on github.com/hashicorp/go-hclog the way Nomad-style CLI tools
// in this corpus log: one named, leveled root logger, with .Named()
// children per subsystem.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New builds the root logger. debug, when true, lowers the level to Debug;
// otherwise the logger only surfaces Warn and above, matching a quiet
// default REPL session.
func New(debug bool) hclog.Logger {
	level := hclog.Warn
	if debug {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "pink",
		Level:      level,
		Output:     os.Stderr,
		JSONFormat: false,
	})
}
