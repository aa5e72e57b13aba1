package resolver

import (
	"embed"
	"strings"

	"github.com/mcgru/pink/internal/diagnostics"
)

//go:embed stdlib/*.pink
var stdlibFS embed.FS

// StdResolver serves the fixed set of embedded modules keyed by
// "std/<module>", failing for any other prefix: built-in packages are
// served from an in-binary registry rather than the filesystem.
type StdResolver struct{}

// NewStdResolver builds a StdResolver. It has no state: the embedded
// filesystem is a process-wide constant.
func NewStdResolver() *StdResolver { return &StdResolver{} }

func (r *StdResolver) Resolve(name string) (string, error) {
	const prefix = "std/"
	if !strings.HasPrefix(name, prefix) {
		return "", diagnostics.New(diagnostics.ErrFileNotFound, name)
	}
	data, err := stdlibFS.ReadFile("stdlib/" + strings.TrimPrefix(name, prefix) + ".pink")
	if err != nil {
		return "", diagnostics.New(diagnostics.ErrFileNotFound, name)
	}
	return string(data), nil
}
