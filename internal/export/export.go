// Package export writes generated trees to files.
package export

import (
	"fmt"
	"io"

	"github.com/Faultbox/lowpoly-tree/internal/tree"
)

// Format is an output file format.
type Format string

const (
	FormatOBJ  Format = "obj"
	FormatYAML Format = "yaml"
)

// Write encodes trees to w in the given format.
func Write(w io.Writer, format Format, trees ...*tree.Tree) error {
	switch format {
	case FormatOBJ:
		return WriteOBJ(w, trees...)
	case FormatYAML:
		return WriteReport(w, trees...)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
