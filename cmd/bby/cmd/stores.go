package cmd

import (
	"github.com/spf13/cobra"
)

func storesCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		sort     string
		show     string
	)

	cmd := &cobra.Command{
		Use:   "stores [query]",
		Short: "Find store locations",
		Example: `  # One store by ID
  bby stores 611

  # Stores within 25 miles of a ZIP code
  bby stores "area(55347, 25)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.Stores(cmd.Context(), argQuery(args), searchParams(page, pageSize, sort, show))
			if err != nil {
				return err
			}
			return printDoc(doc)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&sort, "sort", "", "sort expression")
	cmd.Flags().StringVar(&show, "show", "", "comma-separated attributes to return")

	return cmd
}
