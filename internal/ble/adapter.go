// Package ble provides the BLE client side of a Nordic UART Service (NUS)
// console: device discovery by advertised name, connection establishment,
// and a bidirectional byte session over the two NUS characteristics.
package ble

import (
	"context"
	"time"
)

// Nordic UART Service UUIDs. RX and TX are named from the peripheral's
// perspective: the central writes to RX and receives notifications on TX.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	RXCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write without response
	TXCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
)

// Characteristic represents a BLE GATT characteristic.
type Characteristic interface {
	// WriteWithoutResponse sends data without awaiting a peripheral ack.
	WriteWithoutResponse(data []byte) error
	// Subscribe registers a callback for notifications on this characteristic.
	Subscribe(callback func(data []byte)) error
}

// Device represents a discovered BLE peripheral.
type Device struct {
	Name    string // advertised local name, may be empty
	Address string
	RSSI    int
}

// Connection represents an active BLE connection to a peripheral.
type Connection interface {
	// DiscoverCharacteristic finds a characteristic by UUID within a service.
	DiscoverCharacteristic(serviceUUID, charUUID string) (Characteristic, error)
	// Disconnect terminates the connection.
	Disconnect() error
}

// Adapter abstracts the BLE hardware adapter for testing.
type Adapter interface {
	// Enable powers on the BLE adapter.
	Enable() error
	// Scan collects every peripheral seen during the full window, in
	// first-seen order, deduplicated by address. It does not stop early
	// on a match; filtering is the caller's concern.
	Scan(ctx context.Context, window time.Duration) ([]Device, error)
	// Connect establishes a connection to the device at the given address.
	Connect(ctx context.Context, address string) (Connection, error)
}
