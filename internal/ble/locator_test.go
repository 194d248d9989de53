package ble

import (
	"context"
	"errors"
	"testing"
	"time"
)

const testWindow = 10 * time.Millisecond

func TestFindReturnsFirstMatchInScanOrder(t *testing.T) {
	adapter := newMockAdapter([]Device{
		{Name: "Foo-1", Address: "AA:00"},
		{Name: "Bar-2", Address: "BB:00"},
		{Name: "Foo-2", Address: "CC:00"},
	})

	dev, err := Find(context.Background(), adapter, "Foo", testWindow)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if dev.Name != "Foo-1" {
		t.Errorf("Find() = %q, want first match in scan order %q", dev.Name, "Foo-1")
	}
}

func TestFindMatchesBySubstringNotEquality(t *testing.T) {
	adapter := newMockAdapter([]Device{
		{Name: "My-UART-Dev", Address: "AA:00"},
	})

	dev, err := Find(context.Background(), adapter, "UART", testWindow)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if dev.Address != "AA:00" {
		t.Errorf("Find() returned %+v, want My-UART-Dev", dev)
	}
}

func TestFindIsCaseSensitive(t *testing.T) {
	adapter := newMockAdapter([]Device{
		{Name: "my-uart-dev", Address: "AA:00"},
	})

	if _, err := Find(context.Background(), adapter, "UART", testWindow); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Find() error = %v, want ErrDeviceNotFound (containment is case-sensitive)", err)
	}
}

func TestFindNoMatchFailsWithoutConnecting(t *testing.T) {
	adapter := newMockAdapter([]Device{
		{Name: "Something-Else", Address: "AA:00"},
		{Name: "", Address: "BB:00"}, // nameless advertiser never matches
	})

	_, err := Find(context.Background(), adapter, "UART", testWindow)
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("Find() error = %v, want ErrDeviceNotFound", err)
	}
	if n := adapter.connectCount(); n != 0 {
		t.Errorf("Find() made %d connection attempts, want 0", n)
	}
}

func TestFindEmptyScanFailsNotFound(t *testing.T) {
	adapter := newMockAdapter(nil)

	if _, err := Find(context.Background(), adapter, "UART", testWindow); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Find() error = %v, want ErrDeviceNotFound", err)
	}
}

func TestFindNoAdapter(t *testing.T) {
	adapter := newMockAdapter(nil)
	adapter.enableErr = errors.New("mock: bluetooth is off")

	_, err := Find(context.Background(), adapter, "UART", testWindow)
	if !errors.Is(err, ErrNoAdapter) {
		t.Errorf("Find() error = %v, want ErrNoAdapter", err)
	}
}

func TestFindRejectsEmptyFilter(t *testing.T) {
	adapter := newMockAdapter([]Device{{Name: "Foo-1", Address: "AA:00"}})

	if _, err := Find(context.Background(), adapter, "", testWindow); err == nil {
		t.Error("Find() with empty filter should error, got nil")
	}
}
