package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/flashcards/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Flashcard study app",
		Long: `flashcards lets you create named flashcard sets, add term/definition
cards to them and flip through the cards one at a time.

Sets live in memory only. A seed file can be loaded at startup and any
set can be exported to Anki.

Examples:
  flashcards                                  # Launch the study window
  flashcards --import biology.txt             # Start with cards from a file
  flashcards --import decks.yaml --export out # Convert to Anki without a window`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.flashcards.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Local flags
	cmd.Flags().StringVarP(&flags.ImportFile, "import", "i", "", "Seed sets from a file (.txt with 'term = definition' lines, or .yaml)")
	cmd.Flags().StringVar(&flags.ImportName, "import-name", "", "Set name for .txt imports (default: file name)")
	cmd.Flags().StringVarP(&flags.ExportPath, "export", "e", "", "Export imported sets to this file or directory and exit")
	cmd.Flags().StringVar(&flags.ExportFormat, "export-format", flags.ExportFormat, "Export format: apkg or csv")
	cmd.Flags().Float32Var(&flags.WindowWidth, "width", flags.WindowWidth, "Window width")
	cmd.Flags().Float32Var(&flags.WindowHeight, "height", flags.WindowHeight, "Window height")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("import.file", cmd.Flags().Lookup("import"))
	viper.BindPFlag("import.name", cmd.Flags().Lookup("import-name"))
	viper.BindPFlag("export.path", cmd.Flags().Lookup("export"))
	viper.BindPFlag("export.format", cmd.Flags().Lookup("export-format"))
	viper.BindPFlag("window.width", cmd.Flags().Lookup("width"))
	viper.BindPFlag("window.height", cmd.Flags().Lookup("height"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".flashcards" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".flashcards")
	}

	// Environment variables
	viper.SetEnvPrefix("FLASHCARDS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies values from viper (config file, environment, bound
// flags) back into flags.
func ApplyConfig(flags *Flags) {
	if v := viper.GetString("log.level"); v != "" {
		flags.LogLevel = v
	}
	if v := viper.GetString("import.file"); v != "" {
		flags.ImportFile = v
	}
	if v := viper.GetString("import.name"); v != "" {
		flags.ImportName = v
	}
	if v := viper.GetString("export.path"); v != "" {
		flags.ExportPath = v
	}
	if v := viper.GetString("export.format"); v != "" {
		flags.ExportFormat = v
	}
	if v := viper.GetFloat64("window.width"); v > 0 {
		flags.WindowWidth = float32(v)
	}
	if v := viper.GetFloat64("window.height"); v > 0 {
		flags.WindowHeight = float32(v)
	}
}
