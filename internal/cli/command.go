package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/ruphon/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ruphon [transcription]",
		Short: "Russian spelling from IPA transcriptions",
		Long: `ruphon spells a phonetic transcription in Russian Cyrillic.

The transcription uses a small IPA subset. Mark palatalization with ʲ and
length with ː directly after the sound they modify; separate words with a
space.

Examples:
  ruphon nʲæ                    # prints "ня"
  ruphon 'mʲːæːu'               # prints "мьмяау"
  ruphon --explain podjezd      # show how each unit was spelled
  ruphon --batch words.txt      # one transcription per line
  ruphon --word няня            # fetch a transcription from OpenAI first`,
		Args:          cobra.MaximumNArgs(1),
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	defaultOutputDir := filepath.Join(home, ".local", "state", "ruphon", "exports")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.ruphon.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn or error")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output-dir", "d", defaultOutputDir, "Directory for Anki exports")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Write results to this file instead of stdout")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: text, tsv or json")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process transcriptions from file (one per line)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Concurrent workers in batch mode")
	cmd.Flags().BoolVar(&flags.Word, "word", false, "Treat the argument as a Russian word and fetch its transcription")
	cmd.Flags().BoolVar(&flags.Explain, "explain", false, "Print the spelling decision for every unit")
	cmd.Flags().BoolVar(&flags.ListSymbols, "list-symbols", false, "List the supported transcription symbols")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List the OpenAI chat models usable with --word")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the export directory to a timestamped archive")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate an Anki package (APKG, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate a CSV import file instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used by --word")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("anki.deck_name", cmd.Flags().Lookup("deck-name"))
	viper.BindPFlag("phonetic.model", cmd.Flags().Lookup("openai-model"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".ruphon" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ruphon")
	}

	viper.SetDefault("phonetic.timeout", "30s")

	viper.SetEnvPrefix("RUPHON")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies config file values into flags the user did not set
// on the command line.
func ApplyConfig(cmd *cobra.Command, flags *Flags) {
	if !cmd.Flags().Changed("output-dir") && viper.IsSet("output.directory") {
		flags.OutputDir = viper.GetString("output.directory")
	}
	if !cmd.Flags().Changed("output") && viper.IsSet("output.file") {
		flags.OutputFile = viper.GetString("output.file")
	}
	if !cmd.Flags().Changed("format") && viper.IsSet("output.format") {
		flags.Format = viper.GetString("output.format")
	}
	if !cmd.Flags().Changed("workers") && viper.IsSet("batch.workers") {
		flags.Workers = viper.GetInt("batch.workers")
	}
	if !cmd.Flags().Changed("deck-name") && viper.IsSet("anki.deck_name") {
		flags.DeckName = viper.GetString("anki.deck_name")
	}
	if !cmd.Flags().Changed("openai-model") && viper.IsSet("phonetic.model") {
		flags.OpenAIModel = viper.GetString("phonetic.model")
	}
	if !cmd.PersistentFlags().Changed("log-level") && viper.IsSet("log.level") {
		flags.LogLevel = viper.GetString("log.level")
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("phonetic.openai_key")
}

// SetupLogging installs a text slog handler on stderr as the default logger
func SetupLogging(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
