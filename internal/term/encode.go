package term

// Encode maps a key event to the bytes a serial terminal would transmit,
// or nil when the event has no wire representation. The table follows
// ANSI/ASCII conventions and must stay exact: line-editing firmware on
// the far side expects standard terminal escape codes.
//
// Escape always encodes to nil: it is the session exit key and is handled
// by the caller, never transmitted.
func Encode(ev Event) []byte {
	switch ev.Key {
	case KeyRune:
		c := byte(ev.Rune)
		if ev.Ctrl {
			// Terminal control-character generation: Ctrl-L -> 0x0C.
			c &= 0x1F
		}
		return []byte{c}
	case KeyBackspace:
		return []byte{0x08}
	case KeyEnter:
		return []byte{'\r'} // carriage return, not newline
	case KeyTab:
		return []byte{'\t'}
	case KeyLeft:
		return []byte{0x1B, '[', 'D'}
	case KeyRight:
		return []byte{0x1B, '[', 'C'}
	case KeyUp:
		return []byte{0x1B, '[', 'A'}
	case KeyDown:
		return []byte{0x1B, '[', 'B'}
	default:
		return nil
	}
}
