package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op marks whether a line was removed or added.
type Op int

const (
	Removed Op = iota
	Added
)

// Change is one line present on only one side of a comparison.
type Change struct {
	Op   Op
	Line string
}

// String renders the change with a -/+ prefix.
func (c Change) String() string {
	if c.Op == Removed {
		return "-" + c.Line
	}
	return "+" + c.Line
}

// Lines compares two renderings line by line and returns the removed and
// added lines in document order. Lines present on both sides are omitted, so
// identical input yields nil.
func Lines(before, after []string) []Change {
	a, b := joinLines(before), joinLines(after)
	if a == b {
		return nil
	}

	dmp := diffmatchpatch.New()
	charsA, charsB, table := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(charsA, charsB, false), table)

	var changes []Change
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Removed
		case diffmatchpatch.DiffInsert:
			op = Added
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			changes = append(changes, Change{Op: op, Line: line})
		}
	}
	return changes
}

// Strings renders every change with its prefix.
func Strings(changes []Change) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.String())
	}
	return out
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
