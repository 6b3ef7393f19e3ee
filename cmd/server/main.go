// tombs-server serves independent games over SSH, one per connection.
//
//	go build -o tombs-server ./cmd/server
//	./tombs-server --port 2222 --key server_host_key
//	ssh -t -p 2222 localhost
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tombs-roguelike/internal/cli"
)

var (
	port     int
	keyFile  string
	logLevel string
	genFlags cli.GeneratorFlags
)

var rootCmd = &cobra.Command{
	Use:   "tombs-server",
	Short: "Serve Tombs of the Ancient Kings over SSH",
	Long:  `Starts an SSH server; every connecting terminal plays its own freshly generated dungeon.`,
	RunE:  runServer,
}

func init() {
	rootCmd.Flags().IntVar(&port, "port", 2222, "SSH server port")
	rootCmd.Flags().StringVar(&keyFile, "key", "server_host_key", "PEM host key path (generated if absent)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	genFlags.Bind(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
