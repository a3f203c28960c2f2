package cmd

import (
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Report client and remote API versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}
			return printDoc(doc)
		},
	}

	return cmd
}
