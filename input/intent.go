package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit       // q, Esc, Ctrl+C
	IntentSpin       // Space, Enter, click on the spin control
	IntentToggleMute // m
	IntentResize     // Terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentSpin:
		return "spin"
	case IntentToggleMute:
		return "mute"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}
