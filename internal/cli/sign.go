package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func newSignCmd(s *settings) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "sign ACTION",
		Short: "Print the canonical string, headers and signed URL without sending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.build(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			client, err := s.newClient()
			if err != nil {
				return err
			}

			signed, err := client.Sign(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scheme := newColorScheme()

			scheme.Highlight.Fprintln(out, "Canonical string:")
			fmt.Fprintln(out, signed.CanonicalString())
			fmt.Fprintln(out)

			scheme.Highlight.Fprintln(out, "Headers:")
			header := signed.Header()
			names := make([]string, 0, len(header))
			for name := range header {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(out, "%s: %s\n", scheme.HeaderKey.Sprint(name), header.Get(name))
			}
			fmt.Fprintln(out)

			scheme.Highlight.Fprintln(out, "URL:")
			fmt.Fprintf(out, "%s %s\n", scheme.Method.Sprint(signed.Method()), scheme.URL.Sprint(signed.URL()))

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
