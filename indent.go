// indent.go: the indentation engine (component C). Measures leading
// whitespace on each logical line, compares it to a stack of previously
// seen indent widths, and turns the difference into a signed count of
// pending INDENT/OUTDENT tokens the driver drains one at a time.
//
// Grounded on Lexer.computeIndentation / Lexer.popParen in the Java
// reference this package's tokenizer follows.
package starlex

// computeIndentation runs once per logical line start (lx.pos sitting
// right after a newline, or at the very start of the file) and updates
// lx.dents to the number of INDENT (positive) or OUTDENT (negative) tokens
// the next calls to tokenize must emit before resuming normal scanning.
// Comment-only and blank lines are skipped without affecting the indent
// stack; they simply reset indentLen and keep scanning.
func (lx *Lexer) computeIndentation() {
	indentLen := 0

loop:
	for lx.pos < len(lx.buffer) {
		switch lx.buffer[lx.pos] {
		case ' ':
			indentLen++
			lx.pos++
		case '\r':
			lx.pos++
		case '\t':
			indentLen++
			lx.pos++
			lx.error("Tab characters are not allowed for indentation. Use spaces instead.", lx.pos-1)
		case '\n':
			indentLen = 0
			lx.pos++
		case '#':
			start := lx.pos
			for lx.pos < len(lx.buffer) && lx.buffer[lx.pos] != '\n' {
				lx.pos++
			}
			lx.addComment(start, lx.pos)
			indentLen = 0
		default:
			break loop
		}
	}

	if lx.pos == len(lx.buffer) {
		// A comment or blank run that reaches EOF carries no indentation:
		// measuring it as 0 pops every open level below, so the pending
		// OUTDENTs are emitted before EOF.
		indentLen = 0
	}

	top := lx.indentStack[len(lx.indentStack)-1]
	switch {
	case top < indentLen:
		lx.indentStack = append(lx.indentStack, indentLen)
		lx.dents++
	case top > indentLen:
		for top > indentLen {
			lx.indentStack = lx.indentStack[:len(lx.indentStack)-1]
			lx.dents--
			top = lx.indentStack[len(lx.indentStack)-1]
		}
		if top < indentLen {
			lx.error("indentation error", clampPos(lx.pos-1))
		}
	}
}

// popParen closes one level of bracket nesting, or reports an
// indentation error if brackets were never opened — an unmatched close
// bracket looks, to the indentation engine, exactly like inconsistent
// dedentation.
func (lx *Lexer) popParen() {
	if lx.openParenDepth == 0 {
		lx.error("indentation error", clampPos(lx.pos-1))
		return
	}
	lx.openParenDepth--
}
