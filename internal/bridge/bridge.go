// Package bridge wires a BLE NUS session to the local terminal: one relay
// for device notifications, one poll loop for keystrokes, and the
// setup/teardown around them.
package bridge

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nusterm/nusterm/internal/ble"
	"github.com/nusterm/nusterm/internal/term"
)

const (
	DefaultScanWindow   = 5 * time.Second
	DefaultPollInterval = 50 * time.Millisecond

	// Sent once on entering the active phase so the remote shell or
	// firmware redraws its prompt.
	promptRedraw = 'l' & 0x1F
)

// Options configures a bridge run.
type Options struct {
	// NameFilter selects the peripheral: first scan hit whose advertised
	// name contains this substring. Required.
	NameFilter string
	// ScanWindow bounds the discovery scan. Defaults to DefaultScanWindow.
	ScanWindow time.Duration
	// PollInterval is the key-poll wakeup period. Defaults to
	// DefaultPollInterval.
	PollInterval time.Duration
	// OpenTerminal enters raw mode. It is called only after the BLE setup
	// succeeded, so a setup failure never leaves the terminal in a bad
	// state. Required.
	OpenTerminal func() (term.Terminal, error)
}

func (o Options) withDefaults() Options {
	if o.ScanWindow <= 0 {
		o.ScanWindow = DefaultScanWindow
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	return o
}

// Run drives one terminal session end to end: locate, connect, discover,
// subscribe, then relay until Escape is pressed or ctx is cancelled.
// Every error it returns is a setup-phase failure; once the terminal is
// open the only outcomes are a clean nil (Escape) or ctx.Err().
func Run(ctx context.Context, adapter ble.Adapter, opts Options) error {
	opts = opts.withDefaults()

	dev, err := ble.Find(ctx, adapter, opts.NameFilter, opts.ScanWindow)
	if err != nil {
		return err
	}
	slog.Info("[BLE] device found", "name", dev.Name, "address", dev.Address, "rssi", dev.RSSI)

	sess, err := ble.Connect(ctx, adapter, dev)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.Discover(); err != nil {
		return err
	}
	if err := sess.Subscribe(); err != nil {
		return err
	}

	// Raw mode last: everything that can fail has already succeeded.
	trm, err := opts.OpenTerminal()
	if err != nil {
		return err
	}

	// Prompt the remote side to redraw. Issued before the relays start so
	// it always precedes the first keystroke write.
	sess.Send([]byte{promptRedraw})

	done := make(chan struct{})
	go relay(sess, trm, done)

	err = pollKeys(ctx, sess, trm, opts.PollInterval)

	// Teardown. In-flight sends are abandoned, not drained.
	close(done)
	trm.Close()
	slog.Info("[bridge] session closed", "dropped_sends", sess.Dropped())
	return err
}

// relay writes each notification payload to the terminal as it arrives,
// in transport order, decoding lossily so bad UTF-8 can never kill the
// session.
func relay(sess *ble.Session, trm term.Terminal, done <-chan struct{}) {
	for {
		select {
		case data := <-sess.Notifications():
			trm.WriteString(lossyString(data))
		case <-done:
			return
		}
	}
}

// pollKeys waits up to pollInterval for a keystroke, encodes it, and
// dispatches the send on its own goroutine. Sends are fire-and-forget:
// the loop never waits for one, so successive keystrokes may reach the
// device out of order. Escape is the only in-band exit.
func pollKeys(ctx context.Context, sess *ble.Session, trm term.Terminal, pollInterval time.Duration) error {
	for {
		select {
		case ev, ok := <-trm.Events():
			if !ok {
				return nil // terminal shut down underneath us
			}
			if ev.Key == term.KeyEscape {
				return nil
			}
			if data := term.Encode(ev); data != nil {
				go sess.Send(data)
			}
		case <-time.After(pollInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// lossyString decodes data as UTF-8, replacing invalid sequences with
// U+FFFD instead of failing.
func lossyString(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
