package main

// Keystroke records one call to NextCharacter so it can be undone and so the
// typed characters of a line can be coloured.
type Keystroke struct {
	Row      int
	Col      int
	Expected rune
	Typed    rune
	Correct  bool
}

func (p *TypingProgram) popKeystroke() (Keystroke, bool) {
	if len(p.history) == 0 {
		return Keystroke{}, false
	}

	lastIndex := len(p.history) - 1
	keystroke := p.history[lastIndex]
	p.history = p.history[:lastIndex]
	return keystroke, true
}

// Keystrokes returns the keystrokes typed on the current line, in column
// order. The newline keystroke of the line is included once it is typed.
func (p *TypingProgram) Keystrokes() []Keystroke {
	start := len(p.history)
	for start > 0 && p.history[start-1].Row == p.row {
		start--
	}
	return p.history[start:]
}
