package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitalvas/mws"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mws %s\n", mws.Version)
		},
	}
}
