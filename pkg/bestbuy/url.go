package bestbuy

import (
	"net/url"
	"regexp"
	"strings"
)

const jsonSuffix = ".json"

var whitespaceRE = regexp.MustCompile(`\s+`)

// buildURL assembles the final request URL from a base host, an endpoint
// path fragment and caller parameters. The apiKey parameter is always
// present. format=json is added unless the path is a direct ".json"
// resource lookup; the API rejects format alongside those paths.
//
// Whitespace anywhere in the URL is encoded as a literal %20, never "+".
// Filter expressions embed spaces both in the path ("sku in(1,2)") and in
// parameter values ("area(55347, 25)"), and the API only accepts %20.
func buildURL(base, path string, params Params, apiKey string) (string, error) {
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}

	vals := url.Values{}
	for k, v := range params {
		vals.Set(k, v)
	}
	vals.Set("apiKey", apiKey)
	if !strings.HasSuffix(path, jsonSuffix) {
		vals.Set("format", "json")
	}

	// Encode turns spaces into "+"; literal plus signs were already
	// percent-encoded, so every remaining "+" in the query was a space.
	query := strings.ReplaceAll(vals.Encode(), "+", "%20")

	return whitespaceRE.ReplaceAllString(base+path, "%20") + "?" + query, nil
}
