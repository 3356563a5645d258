// expo-booths-tui shows the exhibition floor plan in the terminal. Hover a
// booth for its tooltip, click it for the package details, and use the
// number keys to filter by package.
package main

import (
	"errors"
	"expoBooths/internal/lib/logger/handlers/slogdiscard"
	"expoBooths/internal/lib/logger/sl"
	"expoBooths/internal/storage/catalog"
	"expoBooths/internal/tui"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var catalogPath string
	var inquiryURL string
	var logOutput string

	flagSet := pflag.NewFlagSet("expo-booths-tui", pflag.ContinueOnError)
	flagSet.StringVar(&catalogPath, "catalog", "", "path to a YAML booth catalog (default: built-in floor plan)")
	flagSet.StringVar(&inquiryURL, "inquiry-url", "/inquiry", "base URL of the exhibitor inquiry form")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	log := slogdiscard.NewDiscardLogger()
	if logOutput != "" {
		f, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		defer f.Close()

		log = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	storage := catalog.Default()
	if catalogPath != "" {
		s, err := catalog.Load(catalogPath)
		if err != nil {
			log.Error("failed to load catalog", sl.Err(err))
			return err
		}
		storage = s
	}

	log.Info("catalog loaded", slog.String("path", catalogPath), slog.Int("entries", len(storage.Entries())))

	model, err := tui.NewModel(storage.Entries(), storage, inquiryURL, tui.DefaultTheme())
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		log.Error("terminal program failed", sl.Err(err))
		return err
	}

	log.Info("floor plan closed")

	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `expo-booths-tui: interactive exhibition floor plan.

Keys:
  a, 0    show all booths
  1-4     basic, silver, gold, platinum
  esc     close the booth details
  q       quit

Usage:
  expo-booths-tui [flags]

Flags:
`)
	flagSet.PrintDefaults()
}
