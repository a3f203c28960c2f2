package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bestbuyapis/bestbuy-go/pkg/bestbuy"
)

func availabilityCmd() *cobra.Command {
	var (
		skus        []int
		stores      []int
		skuFilter   string
		storeFilter string
		show        string
	)

	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Check in-store product availability",
		Long: "Check which stores stock which products. Products and stores are\n" +
			"given as ID lists or as filter expressions.",
		Example: `  # One SKU at one store
  bby availability --sku 6354884 --store 611

  # Several SKUs at stores near a ZIP code
  bby availability --sku 6354884 --sku 6284061 --store-filter "area(55347, 25)"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			skuQuery, err := listOrFilter(skus, skuFilter)
			if err != nil {
				return errors.New("one of --sku or --sku-filter is required")
			}
			storeQuery, err := listOrFilter(stores, storeFilter)
			if err != nil {
				return errors.New("one of --store or --store-filter is required")
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.Availability(cmd.Context(), skuQuery, storeQuery, searchParams(0, 0, "", show))
			if err != nil {
				return err
			}
			return printDoc(doc)
		},
	}

	cmd.Flags().IntSliceVar(&skus, "sku", nil, "product SKU (repeatable)")
	cmd.Flags().IntSliceVar(&stores, "store", nil, "store ID (repeatable)")
	cmd.Flags().StringVar(&skuFilter, "sku-filter", "", "product filter expression")
	cmd.Flags().StringVar(&storeFilter, "store-filter", "", "store filter expression")
	cmd.Flags().StringVar(&show, "show", "", "comma-separated attributes to return")

	return cmd
}

func listOrFilter(ids []int, filter string) (bestbuy.Query, error) {
	switch {
	case filter != "":
		return bestbuy.Filter(filter), nil
	case len(ids) > 0:
		return bestbuy.List(ids...), nil
	default:
		return bestbuy.All(), errors.New("empty selection")
	}
}
