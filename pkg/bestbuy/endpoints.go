package bestbuy

import (
	"context"
	"fmt"
	"strconv"
)

// Products queries the product catalog. A Single or digit-string query is
// a direct SKU lookup; a Filter is a products(...) search; All lists the
// whole catalog one page at a time.
func (c *Client) Products(ctx context.Context, q Query, params Params) (any, error) {
	path, err := resourcePath("products", q, "sku")
	if err != nil {
		return nil, err
	}
	return c.call(ctx, hostV1, path, params)
}

// Categories queries the category tree. Category codes such as "cat00000"
// are direct lookups.
func (c *Client) Categories(ctx context.Context, q Query, params Params) (any, error) {
	path, err := resourcePath("categories", q, "")
	if err != nil {
		return nil, err
	}
	return c.call(ctx, hostV1, path, params)
}

// Reviews queries customer reviews.
func (c *Client) Reviews(ctx context.Context, q Query, params Params) (any, error) {
	path, err := resourcePath("reviews", q, "sku")
	if err != nil {
		return nil, err
	}
	return c.call(ctx, hostV1, path, params)
}

// Stores queries store locations. Filters support geographic expressions
// like "area(55347, 25)".
func (c *Client) Stores(ctx context.Context, q Query, params Params) (any, error) {
	path, err := resourcePath("stores", q, "storeId")
	if err != nil {
		return nil, err
	}
	return c.call(ctx, hostV1, path, params)
}

// Availability reports in-store availability of products at stores. Both
// queries accept single IDs, ID lists or pre-formed filter expressions.
func (c *Client) Availability(ctx context.Context, skus, stores Query, params Params) (any, error) {
	path := "/products(" + skus.clause("sku") + ")+stores(" + stores.clause("storeId") + ")"
	return c.call(ctx, hostV1, path, params)
}

// OpenBox queries open-box listings on the beta API. A Single or
// digit-string query looks up the listing for one SKU; a List restricts to
// those SKUs; a Filter is passed through; All lists everything.
func (c *Client) OpenBox(ctx context.Context, q Query, params Params) (any, error) {
	var path string
	switch q.kind {
	case queryAll:
		path = "/products/openBox"
	case querySingle:
		path = "/products/" + strconv.Itoa(q.id) + "/openBox"
	case queryList:
		path = "/products/openBox(" + q.clause("sku") + ")"
	default:
		if digitsRE.MatchString(q.filter) {
			path = "/products/" + q.filter + "/openBox"
		} else {
			path = "/products/openBox(" + q.filter + ")"
		}
	}
	return c.call(ctx, hostBeta, path, params)
}

// Warranties returns the warranty offerings for one SKU. There is no
// search form; the lookup is always direct.
func (c *Client) Warranties(ctx context.Context, sku int, params Params) (any, error) {
	path := fmt.Sprintf("/products/%d/warranties.json", sku)
	return c.call(ctx, hostV1, path, params)
}
