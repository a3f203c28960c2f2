package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bestbuyapis/bestbuy-go/pkg/bestbuy"
)

// printDoc renders a decoded API document as indented JSON. OrderedMap
// documents marshal with their keys in API order.
func printDoc(doc any) error {
	if doc == nil {
		fmt.Println("null")
		return nil
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// searchParams collects the shared pagination and shaping flags into
// request parameters, skipping unset values.
func searchParams(page, pageSize int, sort, show string) bestbuy.Params {
	params := bestbuy.Params{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if pageSize > 0 {
		params["pageSize"] = strconv.Itoa(pageSize)
	}
	if sort != "" {
		params["sort"] = sort
	}
	if show != "" {
		params["show"] = show
	}
	return params
}
