package ble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Find scans for the full window and returns the first peripheral, in scan
// order, whose advertised name contains nameFilter (case-sensitive
// containment). This is a one-shot operation: no rescan, no retry.
//
// A peripheral whose name could not be read scans with an empty name and
// therefore never matches a non-empty filter.
func Find(ctx context.Context, adapter Adapter, nameFilter string, window time.Duration) (Device, error) {
	if nameFilter == "" {
		return Device{}, errors.New("ble: name filter must not be empty")
	}

	if err := adapter.Enable(); err != nil {
		return Device{}, fmt.Errorf("%w: %v", ErrNoAdapter, err)
	}

	slog.Info("[BLE] scanning for device", "filter", nameFilter, "window", window)

	devices, err := adapter.Scan(ctx, window)
	if err != nil {
		return Device{}, fmt.Errorf("ble: scan: %w", err)
	}

	for _, d := range devices {
		if strings.Contains(d.Name, nameFilter) {
			return d, nil
		}
	}
	return Device{}, ErrDeviceNotFound
}
