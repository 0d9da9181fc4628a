// Command colscan infers a per-column logical schema for one or more CSV
// or JSON files, optionally negotiating the results into one consensus
// schema.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/kazmatsu/colscan"
	"github.com/spf13/cobra"
)

const (
	exitSuccess = 0
	exitFatal   = 1
	exitUsage   = 2
)

type scanFlags struct {
	fileType  string
	negotiate bool
	workers   int
	quiet     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "colscan PATH...",
		Short: "Infer a column-level logical schema for CSV or JSON files.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return &usageError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		FlagErrorFunc: func(cmd *cobra.Command, err error) error {
			return &usageError{err}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.fileType, "type", "", `input format: "csv" or "json" (required)`)
	cmd.Flags().BoolVar(&flags.negotiate, "negotiate", false, "also print one consensus schema across all files")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "number of files scanned concurrently (default: number of CPUs)")
	cmd.Flags().BoolVar(&flags.quiet, "quiet", false, "suppress warning-level log output")
	cmd.RegisterFlagCompletionFunc("type", completeType)

	if err := cmd.Execute(); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr, err)
			return exitUsage
		}
		slog.Error(err.Error())
		return exitFatal
	}
	return exitSuccess
}

func completeType(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"csv", "json"}, cobra.ShellCompDirectiveNoFileComp
}

// usageError marks an error that should surface as an argument-validation
// failure rather than a runtime failure.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func runScan(ctx context.Context, flags *scanFlags, paths []string) error {
	if flags.quiet {
		slog.SetLogLoggerLevel(slog.LevelError)
	}

	var format colscan.Format
	switch flags.fileType {
	case "csv":
		format = colscan.FormatCSV
	case "json":
		format = colscan.FormatJSON
	default:
		return &usageError{fmt.Errorf(`--type must be "csv" or "json", got %q`, flags.fileType)}
	}

	opts := []colscan.Option{colscan.WithWorkers(flags.workers)}
	if flags.negotiate {
		opts = append(opts, colscan.WithNegotiate())
	}

	result, err := colscan.NewProcessor(format, opts...).Run(ctx, paths...)
	if err != nil {
		return err
	}

	return printResult(result)
}

type fileOutput struct {
	Path   string            `json:"path"`
	Schema map[string]string `json:"schema,omitempty"`
	Error  string            `json:"error,omitempty"`
}

func printResult(result *colscan.Result) error {
	files := make([]fileOutput, 0, len(result.Files))
	for _, fr := range result.Files {
		out := fileOutput{Path: fr.Path}
		if fr.Err != nil {
			out.Error = fr.Err.Error()
		} else {
			out.Schema = fr.Schema.Map()
		}
		files = append(files, out)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	if result.Negotiated != nil {
		return enc.Encode(struct {
			Files      []fileOutput      `json:"files"`
			Negotiated map[string]string `json:"negotiated"`
		}{Files: files, Negotiated: result.Negotiated.Map()})
	}
	return enc.Encode(struct {
		Files []fileOutput `json:"files"`
	}{Files: files})
}
