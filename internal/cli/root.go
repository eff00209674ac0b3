// Package cli defines the medsum command-line interface.
//
// Go Pattern: Each command is built by a constructor returning a
// *cobra.Command, and they all share one *viper.Viper passed in explicitly
// (no package-level state), so tests can build a fresh tree per case.
package cli

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Shimizu-Technology/medsum/internal/config"
)

// NewRootCmd returns the medsum command tree. Running it without a
// subcommand starts the web server.
func NewRootCmd(version string) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	root := &cobra.Command{
		Use:     "medsum",
		Short:   "Turn medical reports into patient-friendly summaries",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; the environment may already be set
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			return nil
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String("provider", "gemini", "model endpoint: gemini, openai, openrouter, anthropic or mock")
	flags.String("model", "", "model name (default: the provider's default model)")
	flags.Duration("timeout", 120*time.Second, "endpoint request timeout")

	for key, name := range map[string]string{
		config.KeyProvider: "provider",
		config.KeyModel:    "model",
		config.KeyTimeout:  "timeout",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	serve := newServeCmd(v, version)
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, newSummarizeCmd(v), newModelsCmd(v))
	return root
}
