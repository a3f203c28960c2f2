package bestbuy

import (
	"context"
	"fmt"
)

// RecommendationType selects a recommendation feed on the beta API.
type RecommendationType string

const (
	// Trending and MostViewed are catalog-wide feeds, optionally scoped
	// to a category.
	Trending   RecommendationType = "trendingViewed"
	MostViewed RecommendationType = "mostViewed"

	// AlsoViewed and Similar are per-product feeds and require a SKU.
	AlsoViewed RecommendationType = "alsoViewed"
	Similar    RecommendationType = "similar"
)

// Recommendations returns one of the recommendation feeds. For Trending
// and MostViewed, id optionally narrows the feed to a category (e.g.
// "abcat0501000"). For AlsoViewed and Similar, id is the SKU the feed is
// anchored on and is required.
//
// An unknown type or a missing required SKU fails with ErrInvalidArgument
// before any network I/O.
func (c *Client) Recommendations(ctx context.Context, typ RecommendationType, id string, params Params) (any, error) {
	var path string
	switch typ {
	case Trending, MostViewed:
		path = "/products/" + string(typ)
		if id != "" {
			path += "(categoryId=" + id + ")"
		}
	case AlsoViewed, Similar:
		if id == "" {
			return nil, fmt.Errorf("%w: %s recommendations require a SKU", ErrInvalidArgument, typ)
		}
		path = "/products/" + id + "/" + string(typ)
	default:
		return nil, fmt.Errorf("%w: unknown recommendation type %q", ErrInvalidArgument, typ)
	}
	return c.call(ctx, hostBeta, path, params)
}
