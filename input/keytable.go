package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Non-rune keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]IntentType

	// Printable bindings, upper case folds to lower
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEnter:  IntentSpin,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentSpin,
			'm': IntentToggleMute,
		},
	}
}

// Translate resolves a key or resize event; mouse and unbound keys yield IntentNone
func (kt *KeyTable) Translate(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			r := ev.Rune()
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			return kt.Runes[r]
		}
		return kt.SpecialKeys[ev.Key()]
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}
