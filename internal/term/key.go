// Package term provides the raw-mode console the bridge talks to: key
// events decoded by tcell, the key-to-byte encoder that emulates a serial
// terminal, and a minimal glass-TTY renderer for device output.
package term

// Key identifies a decoded terminal key.
type Key int

const (
	KeyRune Key = iota // printable character, see Event.Rune
	KeyEscape
	KeyBackspace
	KeyEnter
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyOther // anything without a wire representation
)

// Event is one decoded keystroke: a key code plus the active modifier.
// Ctrl is the only modifier the encoder cares about.
type Event struct {
	Key  Key
	Rune rune
	Ctrl bool
}

// Terminal is the raw-mode console the bridge reads keys from and prints
// device output to. Open enters raw mode; Close restores the screen.
type Terminal interface {
	// Events returns the decoded keystroke stream. The channel closes
	// when the terminal shuts down.
	Events() <-chan Event
	// WriteString renders device output immediately, without buffering.
	WriteString(s string)
	// Close leaves raw mode and restores the original screen.
	Close()
}
