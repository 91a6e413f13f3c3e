// Package diff compares two ordered lists of lines, such as the hex labels of
// two palettes, and renders the result in unified format.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Op is the kind of change a Line represents.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Line is one entry of a diff.
type Line struct {
	Op   Op
	Text string
}

// Result is the line diff between an expected and an actual list.
type Result struct {
	Lines   []Line
	Added   int
	Removed int
}

// Identical reports whether both inputs held the same lines.
func (r Result) Identical() bool {
	return r.Added == 0 && r.Removed == 0
}

// Lines diffs expected against actual line by line.
func Lines(expected, actual []string) Result {
	dmp := diffmatchpatch.New()

	a := joinLines(expected)
	b := joinLines(actual)
	chars1, chars2, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lineArray)

	var res Result
	for _, d := range diffs {
		lines := strings.Split(d.Text, "\n")
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}

		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Delete
			res.Removed += len(lines)
		case diffmatchpatch.DiffInsert:
			op = Insert
			res.Added += len(lines)
		}
		for _, l := range lines {
			res.Lines = append(res.Lines, Line{Op: op, Text: l})
		}
	}
	return res
}

// Unified renders the diff with file headers and a single hunk. It returns an
// empty string when nothing changed and truncates output past 10,000 lines.
func (r Result) Unified(expectedLabel, actualLabel string) string {
	if r.Identical() {
		return ""
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", expectedLabel)
	fmt.Fprintf(&buf, "+++ %s\n", actualLabel)

	expected, actual := 0, 0
	for _, l := range r.Lines {
		if l.Op != Insert {
			expected++
		}
		if l.Op != Delete {
			actual++
		}
	}
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", expected, actual)

	for _, l := range r.Lines {
		switch l.Op {
		case Delete:
			buf.WriteString("-")
		case Insert:
			buf.WriteString("+")
		default:
			buf.WriteString(" ")
		}
		buf.WriteString(l.Text)
		buf.WriteString("\n")
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
