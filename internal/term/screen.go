package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

const eventBuffer = 16

// Screen is the tcell-backed Terminal implementation. tcell owns the tty:
// Init enters raw mode on the alternate screen and Fini restores both.
// Device output is rendered as a dumb glass TTY — cursor, CR/LF/BS/TAB,
// scrolling — with CSI sequences from the firmware skipped rather than
// interpreted.
type Screen struct {
	screen tcell.Screen
	events chan Event

	mu    sync.Mutex
	x, y  int
	esc   int // 0 = none, 1 = saw ESC, 2 = inside CSI
	style tcell.Style
}

// Open puts the terminal in raw mode on the alternate screen and starts
// decoding key events.
func Open() (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	return newScreen(ts), nil
}

// newScreen wraps an initialized tcell screen. Split from Open so tests
// can supply a tcell.SimulationScreen.
func newScreen(ts tcell.Screen) *Screen {
	s := &Screen{
		screen: ts,
		events: make(chan Event, eventBuffer),
		style:  tcell.StyleDefault,
	}
	go s.pump()
	return s
}

func (s *Screen) Events() <-chan Event {
	return s.events
}

// Close restores the original screen and cooked mode. The event pump
// exits once tcell reports the screen as finalized.
func (s *Screen) Close() {
	s.screen.Fini()
}

// pump translates tcell events into key Events until the screen dies.
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			s.events <- translateKey(ev)
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// translateKey maps a tcell key event to the bridge's key model. tcell
// reports Ctrl+letter as a bare control code (KeyCtrlA..KeyCtrlZ); those
// are turned back into the letter with the Ctrl flag set so the encoder
// owns the control-character math.
func translateKey(ev *tcell.EventKey) Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune(), Ctrl: ev.Modifiers()&tcell.ModCtrl != 0}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace}
	case tcell.KeyEnter:
		return Event{Key: KeyEnter}
	case tcell.KeyTab:
		return Event{Key: KeyTab}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft}
	case tcell.KeyRight:
		return Event{Key: KeyRight}
	case tcell.KeyUp:
		return Event{Key: KeyUp}
	case tcell.KeyDown:
		return Event{Key: KeyDown}
	default:
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return Event{Key: KeyRune, Rune: rune('a' + k - tcell.KeyCtrlA), Ctrl: true}
		}
		return Event{Key: KeyOther}
	}
}

// WriteString renders device output at the cursor and flushes. Safe for
// concurrent use with the event pump.
func (s *Screen) WriteString(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range text {
		s.putRune(r)
	}
	s.screen.ShowCursor(s.x, s.y)
	s.screen.Show()
}

func (s *Screen) putRune(r rune) {
	w, h := s.screen.Size()

	// Skip escape sequences: ESC [ params final-byte. Anything else
	// after ESC is dropped with the ESC itself.
	switch s.esc {
	case 1:
		if r == '[' {
			s.esc = 2
		} else {
			s.esc = 0
		}
		return
	case 2:
		if r >= 0x40 && r <= 0x7E {
			s.esc = 0
		}
		return
	}

	switch r {
	case 0x1B:
		s.esc = 1
	case '\r':
		s.x = 0
	case '\n':
		s.y++
	case '\b', 0x7F:
		if s.x > 0 {
			s.x--
		}
	case '\t':
		s.x = (s.x/8 + 1) * 8
		if s.x >= w {
			s.x = w - 1
		}
	default:
		if r < 0x20 {
			return // remaining control characters: bell etc.
		}
		s.screen.SetContent(s.x, s.y, r, nil, s.style)
		s.x++
		if s.x >= w {
			s.x = 0
			s.y++
		}
	}

	if s.y >= h {
		s.scroll(w, h)
		s.y = h - 1
	}
}

// scroll moves every row up one line and blanks the bottom row.
func (s *Screen) scroll(w, h int) {
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			ch, comb, style, _ := s.screen.GetContent(x, y)
			s.screen.SetContent(x, y-1, ch, comb, style)
		}
	}
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, h-1, ' ', nil, s.style)
	}
}

var _ Terminal = (*Screen)(nil)
