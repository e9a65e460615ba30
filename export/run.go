// Package export writes stored bio-drying runs as CSV tables, spreadsheets
// and charts.
package export

import (
	"errors"
	"fmt"
	"strings"

	"biodrying"

	"github.com/google/uuid"
)

// Run is a named result stored alongside the parameters that produced it.
type Run struct {
	ID     string
	Name   string
	Config biodrying.ProcessConfig
	Result biodrying.Result
}

// NewRun labels a result. An empty name is replaced by one derived from the
// run ID.
func NewRun(name string, cfg biodrying.ProcessConfig, r biodrying.Result) Run {
	id := uuid.NewString()
	if name == "" {
		name = "run-" + id[:8]
	}
	return Run{ID: id, Name: name, Config: cfg, Result: r}
}

// ErrInvalidName is returned for run names that cannot be used as a file
// name prefix.
var ErrInvalidName = errors.New("export: invalid run name")

// ValidateName rejects run names that would place files outside the output
// directory. The empty name is valid.
func ValidateName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
