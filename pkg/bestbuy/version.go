package bestbuy

import (
	"context"
)

// Version is the library version, reported in the User-Agent header and by
// the Version call.
const Version = "1.0.0"

// Version reports the library version alongside the version string
// published by the API at /version.txt. The remote response is plain text
// and is returned trimmed, never JSON-parsed. The shape of the result
// follows the associative setting like every other call.
func (c *Client) Version(ctx context.Context) (any, error) {
	u, err := buildURL(c.rootURL, "/version.txt", nil, c.apiKey)
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, u)
	if err != nil {
		return nil, err
	}

	remote, _ := decode(body, false, true).(string)

	if c.associative {
		m := &OrderedMap{}
		m.set("clientVersion", Version)
		m.set("remoteVersion", remote)
		return m, nil
	}
	return map[string]any{
		"clientVersion": Version,
		"remoteVersion": remote,
	}, nil
}
