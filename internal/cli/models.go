package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Shimizu-Technology/medsum/internal/config"
	"github.com/Shimizu-Technology/medsum/internal/services/summary"
)

func newModelsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models offered by the configured provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
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

			list, err := client.ListModels(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "MODEL\tDESCRIPTION")
			for _, m := range list {
				marker := ""
				// Gemini names carry a "models/" prefix
				if strings.TrimPrefix(m.Name, "models/") == client.Model() {
					marker = " (configured)"
				}
				fmt.Fprintf(w, "%s%s\t%s\n", m.Name, marker, m.Description)
			}
			return w.Flush()
		},
	}
}
