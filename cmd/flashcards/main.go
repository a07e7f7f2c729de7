package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/flashcards/internal/anki"
	"codeberg.org/snonux/flashcards/internal/batch"
	"codeberg.org/snonux/flashcards/internal/cli"
	"codeberg.org/snonux/flashcards/internal/deck"
	"codeberg.org/snonux/flashcards/internal/gui"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(flags *cli.Flags) error {
	cli.ApplyConfig(flags)

	logger, err := cli.NewLogger(flags.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	store := deck.NewStore()

	var imported []*deck.Set
	if flags.ImportFile != "" {
		imported, err = batch.LoadFile(store, flags.ImportFile, flags.ImportName, logger)
		if err != nil {
			return err
		}
	}

	if flags.Headless() {
		return exportSets(imported, flags, logger)
	}

	// No export requested - launch GUI mode
	config, err := guiConfig(flags)
	if err != nil {
		return err
	}
	gui.New(config, store, logger).Run()
	return nil
}

func guiConfig(flags *cli.Flags) (*gui.Config, error) {
	format, err := anki.ParseFormat(flags.ExportFormat)
	if err != nil {
		return nil, err
	}
	return &gui.Config{
		Width:        flags.WindowWidth,
		Height:       flags.WindowHeight,
		ExportFormat: format,
	}, nil
}

// exportSets writes every imported set that has cards. A single set goes to
// the export path as given; several sets always go into it as a directory,
// one file per set.
func exportSets(sets []*deck.Set, flags *cli.Flags, logger *slog.Logger) error {
	format, err := anki.ParseFormat(flags.ExportFormat)
	if err != nil {
		return err
	}

	var nonEmpty []*deck.Set
	for _, set := range sets {
		if set.IsEmpty() {
			logger.Warn("skipping empty set", "set", set.Name())
			continue
		}
		nonEmpty = append(nonEmpty, set)
	}

	var paths []string
	switch len(nonEmpty) {
	case 0:
		return fmt.Errorf("nothing to export from %s", flags.ImportFile)
	case 1:
		path, err := anki.ExportSet(nonEmpty[0], flags.ExportPath, format)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	default:
		if paths, err = anki.ExportSets(nonEmpty, flags.ExportPath, format); err != nil {
			return err
		}
	}

	for i, path := range paths {
		set := nonEmpty[i]
		logger.Info("exported set", "set", set.Name(), "cards", set.Len(), "path", path)
		fmt.Printf("Anki %s created: %s\n", format, path)
	}
	return nil
}
