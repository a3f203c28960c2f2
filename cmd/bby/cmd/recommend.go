package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bestbuyapis/bestbuy-go/pkg/bestbuy"
)

var recommendationTypes = map[string]bestbuy.RecommendationType{
	"trending":   bestbuy.Trending,
	"mostviewed": bestbuy.MostViewed,
	"alsoviewed": bestbuy.AlsoViewed,
	"similar":    bestbuy.Similar,
}

func recommendCmd() *cobra.Command {
	var show string

	cmd := &cobra.Command{
		Use:   "recommend <type> [id]",
		Short: "Fetch product recommendations",
		Long: "Fetch a recommendation feed. Types trending and mostviewed take an\n" +
			"optional category ID; alsoviewed and similar require a SKU.",
		Example: `  bby recommend trending
  bby recommend trending abcat0501000
  bby recommend alsoviewed 6354884
  bby recommend similar 6354884`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, ok := recommendationTypes[args[0]]
			if !ok {
				return fmt.Errorf("unknown recommendation type %q (trending, mostviewed, alsoviewed, similar)", args[0])
			}
			var id string
			if len(args) == 2 {
				id = args[1]
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			doc, err := client.Recommendations(cmd.Context(), typ, id, searchParams(0, 0, "", show))
			if err != nil {
				return err
			}
			return printDoc(doc)
		},
	}

	cmd.Flags().StringVar(&show, "show", "", "comma-separated attributes to return")

	return cmd
}
