package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bestbuyapis/bestbuy-go/pkg/bestbuy"
)

func productsCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		sort     string
		show     string
		all      bool
		maxPages int
	)

	cmd := &cobra.Command{
		Use:   "products [query]",
		Short: "Search the product catalog",
		Long: "Search the product catalog. The query may be a SKU for a direct\n" +
			"lookup, a filter expression, or empty to list everything.",
		Example: `  # Direct SKU lookup
  bby products 6354884

  # Filter expression with attribute selection
  bby products "name=Star Wars*" --show sku,name,salePrice

  # Walk every page of a filtered search
  bby products "manufacturer=canon" --all --page-size 100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			query := argQuery(args)
			params := searchParams(page, pageSize, sort, show)

			if all {
				opts := []bestbuy.PaginatorOption{bestbuy.WithMaxPages(maxPages)}
				if pageSize > 0 {
					opts = append(opts, bestbuy.WithPageSize(pageSize))
				}
				p := bestbuy.NewPaginator(opts...)

				fetch := func(ctx context.Context, params bestbuy.Params) (any, error) {
					return client.Products(ctx, query, params)
				}
				_, err := p.Paginate(cmd.Context(), fetch, params, func(doc any) (bool, error) {
					return true, printDoc(doc)
				})
				return err
			}

			doc, err := client.Products(cmd.Context(), query, params)
			if err != nil {
				return err
			}
			return printDoc(doc)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")
	cmd.Flags().StringVar(&sort, "sort", "", "sort expression, e.g. salePrice.asc")
	cmd.Flags().StringVar(&show, "show", "", "comma-separated attributes to return")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page")
	cmd.Flags().IntVar(&maxPages, "max-pages", 10, "page cap for --all")

	return cmd
}
