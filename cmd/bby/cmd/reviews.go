package cmd

import (
	"github.com/spf13/cobra"
)

func reviewsCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		sort     string
		show     string
	)

	cmd := &cobra.Command{
		Use:   "reviews [query]",
		Short: "Read customer reviews",
		Example: `  # One review by ID
  bby reviews 69944141

  # Reviews for a product
  bby reviews "sku=6354884" --sort rating.desc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.Reviews(cmd.Context(), argQuery(args), searchParams(page, pageSize, sort, show))
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
