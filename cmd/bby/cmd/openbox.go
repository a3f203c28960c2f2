package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bestbuyapis/bestbuy-go/pkg/bestbuy"
)

func openBoxCmd() *cobra.Command {
	var (
		skus     []int
		page     int
		pageSize int
		show     string
	)

	cmd := &cobra.Command{
		Use:   "openbox [query]",
		Short: "Browse open-box listings",
		Example: `  # All open-box listings
  bby openbox

  # The open-box listing for one SKU
  bby openbox 2088495

  # Listings for several SKUs
  bby openbox --sku 8880044 --sku 2088495

  # Listings in a category
  bby openbox "categoryId=abcat0400000"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := argQuery(args)
			if len(skus) > 0 {
				query = bestbuy.List(skus...)
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.OpenBox(cmd.Context(), query, searchParams(page, pageSize, "", show))
			if err != nil {
				return err
			}
			return printDoc(doc)
		},
	}

	cmd.Flags().IntSliceVar(&skus, "sku", nil, "product SKU (repeatable)")
	cmd.Flags().IntVar(&page, "page", 0, "result page")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&show, "show", "", "comma-separated attributes to return")

	return cmd
}
