package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Shimizu-Technology/medsum/internal/config"
	"github.com/Shimizu-Technology/medsum/internal/handlers"
	"github.com/Shimizu-Technology/medsum/internal/history"
	"github.com/Shimizu-Technology/medsum/internal/models"
	"github.com/Shimizu-Technology/medsum/internal/services/extract"
	"github.com/Shimizu-Technology/medsum/internal/services/pipeline"
	"github.com/Shimizu-Technology/medsum/internal/services/summary"
)

func newSummarizeCmd(v *viper.Viper) *cobra.Command {
	var (
		outDir string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "summarize <file|->",
		Short: "Summarize a PDF or text report and print the result",
		Long: `Summarize one report and print the summary to stdout.

Pass "-" to read report text from stdin. With --out-dir the summary is
also written to {name}_summary.txt in that directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			client, err := summary.New(ctx, cfg.SummaryOptions())
			if err != nil {
				return err
			}

			sub, err := readReport(args[0], name, cmd.InOrStdin(), cfg.MaxUploadBytes)
			if err != nil {
				return err
			}

			// One-shot run: a fresh history that lives as long as the command
			out := pipeline.New(extract.New(), client, nil).Run(ctx, sub, history.NewStore())
			if !out.Succeeded() {
				return errors.New(pipeline.UserMessage(out.Err))
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), out.Record.Summary); err != nil {
				return err
			}

			if outDir != "" {
				path := filepath.Join(outDir, handlers.SummaryFilename(out.Record.SourceName))
				if err := os.WriteFile(path, []byte(out.Record.Summary), 0o644); err != nil {
					return fmt.Errorf("write summary: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "📥 Saved %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "also write the summary to this directory")
	cmd.Flags().StringVar(&name, "name", "", "display name for text read from stdin")
	return cmd
}

// readReport loads the report at path, or report text from stdin for "-".
func readReport(path, name string, stdin io.Reader, maxBytes int64) (pipeline.Submission, error) {
	if path == "-" {
		data, err := io.ReadAll(io.LimitReader(stdin, maxBytes+1))
		if err != nil {
			return pipeline.Submission{}, fmt.Errorf("read stdin: %w", err)
		}
		if int64(len(data)) > maxBytes {
			return pipeline.Submission{}, fmt.Errorf("input is too large (max %dMB)", maxBytes>>20)
		}
		if len(data) == 0 {
			return pipeline.Submission{}, nil
		}
		return pipeline.Submission{Text: string(data), Name: name}, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return pipeline.Submission{}, err
	}
	if info.Size() > maxBytes {
		return pipeline.Submission{}, fmt.Errorf("file is too large (max %dMB)", maxBytes>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.Submission{}, err
	}

	return pipeline.Submission{File: &models.ReportInput{
		Data:      data,
		MediaType: extract.ResolveMediaType("", path, data),
		Name:      filepath.Base(path),
	}}, nil
}
