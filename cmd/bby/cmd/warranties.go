package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func warrantiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "warranties <sku>",
		Short:   "Fetch warranty offers for a product",
		Example: "  bby warranties 6354884",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sku, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("sku must be an integer: %w", err)
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.Warranties(cmd.Context(), sku, nil)
			if err != nil {
				return err
			}
			return printDoc(doc)
		},
	}

	return cmd
}
