package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/ruphon/internal/archive"
	"codeberg.org/snonux/ruphon/internal/cli"
	"codeberg.org/snonux/ruphon/internal/models"
	"codeberg.org/snonux/ruphon/internal/processor"
)

// newProcessor is replaced in tests to inject a transcriber
var newProcessor = processor.NewProcessor

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, errOut io.Writer) int {
	flags := cli.NewFlags()
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.SetArgs(args)

	// input is whatever the failing run tried to spell, for the diagnostic
	var input string
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cli.InitConfig(flags.CfgFile)
		if len(args) > 0 {
			input = args[0]
		}
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "Error: %s\n", processor.Diagnose(input, err))
		return 1
	}
	return 0
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(cmd, flags)
	cli.SetupLogging(flags.LogLevel)
	ctx := cmd.Context()

	if flags.Archive {
		archivedPath, err := archive.ArchiveExports(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		fmt.Printf("Exports directory archived to: %s\n", archivedPath)
		return nil
	}

	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey(), "")
		return lister.ListAvailableModels(ctx, os.Stdout, flags.OpenAIModel)
	}

	if !processor.ValidFormat(flags.Format) {
		return fmt.Errorf("unknown output format %q (use text, tsv or json)", flags.Format)
	}

	proc := newProcessor(flags)

	if flags.ListSymbols {
		proc.ListSymbols()
		return nil
	}

	switch {
	case flags.BatchFile != "":
		if _, _, err := proc.ProcessBatch(ctx); err != nil {
			return err
		}
	case len(args) == 0:
		return errors.New("no transcription given (pass one as argument or use --batch)")
	case flags.Explain && flags.Word:
		return proc.ExplainWord(ctx, args[0])
	case flags.Explain:
		return proc.Explain(args[0])
	case flags.Word:
		if _, err := proc.ProcessWord(ctx, args[0]); err != nil {
			return err
		}
	default:
		if _, err := proc.ProcessSingle(ctx, args[0]); err != nil {
			return err
		}
	}

	if flags.GenerateAnki {
		outputPath, err := proc.GenerateAnkiFile()
		if err != nil {
			slog.Warn("Failed to generate Anki file", "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "Anki package created: %s\n", outputPath)
		}
	}
	return nil
}
