// errors.go: accumulative, non-fatal scanner diagnostics with caret-snippet
// rendering.
//
// What this file does
// --------------------
// The lexer never stops on a syntax problem: it appends one entry to a
// shared *ErrorList and does its best to keep producing plausible tokens.
// This file defines that list plus a caret-annotated snippet renderer, so
// a caller (a linter, a REPL) can turn any one entry into something like:
//
//	LEXICAL ERROR at 2:14: invalid character: '$'
//
//	   1 | x = 0
//	   2 | let x = (1 + $2
//	     |              ^
//	   3 |              )
//
// Public: SyntaxError, ErrorList (and its Error() rendering of every
// accumulated entry), and Snippet for a single caret block.
package starlex

import (
	"fmt"
	"strings"
)

// SyntaxError is one non-fatal diagnostic produced by the scanner.
type SyntaxError struct {
	Location Location
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Location.File, e.Location.Line, e.Location.Col, e.Msg)
}

// ErrorList is the append-only sink the lexer writes SyntaxErrors into. The
// zero value is ready to use.
type ErrorList struct {
	errs []*SyntaxError
}

// Add appends one diagnostic. It is the only mutation method the lexer
// calls; callers own the list otherwise.
func (l *ErrorList) Add(loc Location, msg string) {
	l.errs = append(l.errs, &SyntaxError{Location: loc, Msg: msg})
}

// Errs returns the accumulated diagnostics in emission order.
func (l *ErrorList) Errs() []*SyntaxError {
	return l.errs
}

// Len reports how many diagnostics have been recorded.
func (l *ErrorList) Len() int {
	return len(l.errs)
}

// Error implements the error interface by joining every diagnostic on its
// own line, so a caller that wants "fail if anything went wrong" behavior
// can treat a non-empty ErrorList as a single error value.
func (l *ErrorList) Error() string {
	lines := make([]string, len(l.errs))
	for i, e := range l.errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Snippet renders one SyntaxError as a caret-annotated, two-line-of-context
// source excerpt.
func Snippet(e *SyntaxError, src []byte) string {
	lines := strings.Split(string(src), "\n")
	line := e.Location.Line
	col := e.Location.Col

	var b strings.Builder
	fmt.Fprintf(&b, "LEXICAL ERROR at %d:%d: %s\n\n", line, col, e.Msg)

	writeLine := func(n int) {
		if n < 1 || n > len(lines) {
			return
		}
		fmt.Fprintf(&b, "%4d | %s\n", n, lines[n-1])
	}
	writeLine(line - 1)
	writeLine(line)

	caretCol := col
	if caretCol < 1 {
		caretCol = 1
	}
	b.WriteString("     | ")
	b.WriteString(strings.Repeat(" ", caretCol-1))
	b.WriteString("^\n")

	writeLine(line + 1)
	return b.String()
}
