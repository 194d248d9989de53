package ble

import "errors"

// Setup-phase failures. All of these abort the program before the
// terminal enters raw mode; none are retried.
var (
	ErrNoAdapter                = errors.New("no bluetooth adapter available")
	ErrDeviceNotFound           = errors.New("no device matching the name filter was found")
	ErrConnectionFailed         = errors.New("connection failed")
	ErrRXCharacteristicNotFound = errors.New("RX characteristic not found (peripheral does not speak NUS)")
	ErrTXCharacteristicNotFound = errors.New("TX characteristic not found (peripheral does not speak NUS)")
)
