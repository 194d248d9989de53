// Command nusterm bridges the local terminal to a BLE peripheral exposing
// the Nordic UART Service: keystrokes go out over the NUS RX
// characteristic, notifications on TX come back to the screen. Press
// Escape to exit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/nusterm/nusterm/internal/ble"
	"github.com/nusterm/nusterm/internal/bridge"
	"github.com/nusterm/nusterm/internal/term"
)

var version = "0.1.0"

func main() {
	var (
		name        string
		showVersion bool
	)
	pflag.StringVarP(&name, "name", "n", "", "BLE device name filter (substring match, required)")
	pflag.BoolVar(&showVersion, "version", false, "print version and exit")
	pflag.Parse()

	if showVersion {
		fmt.Println("nusterm", version)
		return
	}

	if name == "" {
		fmt.Fprintln(os.Stderr, "nusterm: --name is required")
		pflag.Usage()
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	err := bridge.Run(context.Background(), ble.NewNativeAdapter(), bridge.Options{
		NameFilter: name,
		OpenTerminal: func() (term.Terminal, error) {
			return term.Open()
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "nusterm: %v\n", err)
		os.Exit(1)
	}
}
