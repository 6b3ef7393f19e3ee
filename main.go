// tombs plays Tombs of the Ancient Kings in the local terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"tombs-roguelike/internal/cli"
	"tombs-roguelike/internal/game"
)

var (
	realtime bool
	logPath  string
	debug    bool
	genFlags cli.GeneratorFlags
)

var rootCmd = &cobra.Command{
	Use:   "tombs",
	Short: "Tombs of the Ancient Kings",
	Long:  `A turn-based dungeon crawl: explore by torchlight, bump into monsters to fight them, try not to perish.`,
	RunE:  runGame,
}

func init() {
	rootCmd.Flags().BoolVar(&realtime, "realtime", false, "run at a fixed frame rate instead of waiting for keys")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write logs to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
	genFlags.Bind(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGame(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger, closer, err := cli.OpenLog(logPath, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	roller, seed := genFlags.Roller()
	session, err := game.NewSession(genFlags.Config(), roller, logger)
	if err != nil {
		return err
	}
	logger.Info("game started", "seed", seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	policy := game.PolicyBlocking
	if realtime {
		policy = game.PolicyRealtime
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := game.New(screen, session, policy).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
