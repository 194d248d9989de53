package ble

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tinygo.org/x/bluetooth"
)

// NativeAdapter wraps tinygo-org/bluetooth's default adapter. On Linux the
// device address is a MAC; on macOS it is a CoreBluetooth UUID string.
// Either way it round-trips through Device.Address unchanged.
type NativeAdapter struct {
	adapter *bluetooth.Adapter
}

// NewNativeAdapter returns an Adapter backed by the platform BLE stack.
func NewNativeAdapter() *NativeAdapter {
	return &NativeAdapter{adapter: bluetooth.DefaultAdapter}
}

func (a *NativeAdapter) Enable() error {
	return a.adapter.Enable()
}

func (a *NativeAdapter) Scan(ctx context.Context, window time.Duration) ([]Device, error) {
	ctx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	var mu sync.Mutex
	var devices []Device
	seen := make(map[string]bool)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			a.adapter.StopScan()
		case <-done:
		}
	}()

	err := a.adapter.Scan(func(_ *bluetooth.Adapter, result bluetooth.ScanResult) {
		addr := result.Address.String()
		mu.Lock()
		defer mu.Unlock()
		if seen[addr] {
			return
		}
		seen[addr] = true
		devices = append(devices, Device{
			Name:    result.LocalName(),
			Address: addr,
			RSSI:    int(result.RSSI),
		})
	})
	close(done)

	// StopScan makes the blocking Scan call return; only report errors
	// that are not the window simply elapsing.
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("ble: scan: %w", err)
	}
	return devices, nil
}

func (a *NativeAdapter) Connect(ctx context.Context, address string) (Connection, error) {
	var addr bluetooth.Address
	addr.Set(address)

	// tinygo's Connect blocks with its own internal timeout. Wrap it so
	// we also respect ctx cancellation.
	type connectResult struct {
		device bluetooth.Device
		err    error
	}
	ch := make(chan connectResult, 1)
	go func() {
		device, err := a.adapter.Connect(addr, bluetooth.ConnectionParams{})
		ch <- connectResult{device, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("ble: connect to %s: %w", address, ctx.Err())
	case result := <-ch:
		if result.err != nil {
			return nil, fmt.Errorf("ble: connect to %s: %w", address, result.err)
		}
		return &nativeConnection{device: result.device}, nil
	}
}

var _ Adapter = (*NativeAdapter)(nil)

type nativeConnection struct {
	device bluetooth.Device
}

func (c *nativeConnection) DiscoverCharacteristic(serviceUUID, charUUID string) (Characteristic, error) {
	svcUUID, err := bluetooth.ParseUUID(serviceUUID)
	if err != nil {
		return nil, fmt.Errorf("ble: parse service UUID: %w", err)
	}
	chUUID, err := bluetooth.ParseUUID(charUUID)
	if err != nil {
		return nil, fmt.Errorf("ble: parse characteristic UUID: %w", err)
	}

	svcs, err := c.device.DiscoverServices([]bluetooth.UUID{svcUUID})
	if err != nil {
		return nil, fmt.Errorf("ble: discover services: %w", err)
	}
	if len(svcs) == 0 {
		return nil, fmt.Errorf("ble: service %s not found", serviceUUID)
	}

	chars, err := svcs[0].DiscoverCharacteristics([]bluetooth.UUID{chUUID})
	if err != nil {
		return nil, fmt.Errorf("ble: discover characteristics: %w", err)
	}
	if len(chars) == 0 {
		return nil, fmt.Errorf("ble: characteristic %s not found", charUUID)
	}

	return &nativeCharacteristic{char: chars[0]}, nil
}

func (c *nativeConnection) Disconnect() error {
	return c.device.Disconnect()
}

type nativeCharacteristic struct {
	char bluetooth.DeviceCharacteristic
}

func (c *nativeCharacteristic) WriteWithoutResponse(data []byte) error {
	_, err := c.char.WriteWithoutResponse(data)
	return err
}

func (c *nativeCharacteristic) Subscribe(callback func(data []byte)) error {
	return c.char.EnableNotifications(callback)
}
