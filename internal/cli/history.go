package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"game-manager/pkg/gmclient"
)

func newHistoryCmd(newClient clientFactory) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:       "history <voip|vr|iot|geospatial>",
		Short:     "Show a game manager's recent executions",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"voip", "vr", "iot", "geospatial"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := gmclient.Kind(args[0])

			list, err := newClient().ListExecutions(cmd.Context(), kind, limit)
			if err != nil {
				printFailure(cmd.ErrOrStderr(), "history "+args[0], err)
				return err
			}

			out := cmd.OutOrStdout()
			dimColor.Fprintf(out, "%d of %d recent %s executions\n", len(list.Executions), list.Total, kind)

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "EXECUTED AT\tTASK\tNAME\tRUN")
			for _, exec := range list.Executions {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", exec.ExecutedAt.Format(time.RFC3339), exec.TaskID, exec.Name, exec.RunID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max executions to show (server default when 0)")
	return cmd
}
