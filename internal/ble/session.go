package ble

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// notifyBuffer sizes the notification channel. The subscribe callback
// blocks when it fills, which preserves delivery order; the bridge's
// relay drains it continuously so this is ample for interactive traffic.
const notifyBuffer = 64

// Session owns a connected NUS peripheral and its two characteristic
// references. Create it with Connect, then call Discover and Subscribe
// before using Send or Notifications.
type Session struct {
	conn Connection
	rx   Characteristic // write side (central -> peripheral)
	tx   Characteristic // notify side (peripheral -> central)

	// writeMu serializes writes: sends are dispatched from independent
	// goroutines and the transport write path is not documented as safe
	// for concurrent use.
	writeMu sync.Mutex
	dropped atomic.Uint64

	notifs chan []byte
}

// Connect establishes the transport connection to dev. The adapter must
// already be enabled (Find does this).
func Connect(ctx context.Context, adapter Adapter, dev Device) (*Session, error) {
	conn, err := adapter.Connect(ctx, dev.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	return &Session{
		conn:   conn,
		notifs: make(chan []byte, notifyBuffer),
	}, nil
}

// Discover resolves the RX and TX characteristics by their fixed UUIDs.
// A missing characteristic is fatal: the peripheral does not speak NUS.
func (s *Session) Discover() error {
	rx, err := s.conn.DiscoverCharacteristic(ServiceUUID, RXCharUUID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRXCharacteristicNotFound, err)
	}
	tx, err := s.conn.DiscoverCharacteristic(ServiceUUID, TXCharUUID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTXCharacteristicNotFound, err)
	}
	s.rx = rx
	s.tx = tx
	return nil
}

// Subscribe enables notifications on the TX characteristic. Must complete
// before any notification can be observed on Notifications.
func (s *Session) Subscribe() error {
	return s.tx.Subscribe(func(data []byte) {
		// The transport may reuse the callback buffer.
		buf := make([]byte, len(data))
		copy(buf, data)
		s.notifs <- buf
	})
}

// Notifications returns the ordered stream of notification payloads, one
// element per GATT notification, exactly as received: no reordering, no
// deduplication, no coalescing.
func (s *Session) Notifications() <-chan []byte {
	return s.notifs
}

// Send writes data to the RX characteristic without response. Write errors
// are swallowed — a single dropped keystroke must not end the interactive
// session — but counted for diagnostics.
func (s *Session) Send(data []byte) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.rx.WriteWithoutResponse(data); err != nil {
		s.dropped.Add(1)
	}
}

// Dropped reports how many sends failed since the session was created.
func (s *Session) Dropped() uint64 {
	return s.dropped.Load()
}

// Close disconnects from the peripheral.
func (s *Session) Close() error {
	return s.conn.Disconnect()
}
