package bestbuy

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	digitsRE = regexp.MustCompile(`^\d+$`)

	// Category codes like cat00000, pcmcat209400050001 or abcat0101000 are
	// direct resource IDs, not filter expressions.
	resourceIDRE = regexp.MustCompile(`^(cat|pcmcat|abcat)?\d+$`)
)

type queryKind int

const (
	queryAll queryKind = iota
	querySingle
	queryList
	queryFilter
)

// Query identifies which resources an endpoint call targets: a single
// numeric ID, an ordered list of IDs, a free-form filter expression passed
// through verbatim to the API, or everything.
type Query struct {
	kind   queryKind
	id     int
	ids    []int
	filter string
}

// Single targets one resource by numeric ID.
func Single(id int) Query {
	return Query{kind: querySingle, id: id}
}

// List targets an ordered set of resources by numeric ID. Order is
// preserved and duplicates are kept.
func List(ids ...int) Query {
	if len(ids) == 0 {
		return All()
	}
	return Query{kind: queryList, ids: ids}
}

// Filter wraps a service-defined filter expression such as "name=Star*".
// The expression is not validated; syntax errors surface as API errors.
// A string of digits is equivalent to Single, and an empty string to All.
func Filter(expr string) Query {
	if expr == "" {
		return All()
	}
	return Query{kind: queryFilter, filter: expr}
}

// All targets every resource of an endpoint.
func All() Query {
	return Query{kind: queryAll}
}

// clause renders the query as a filter clause over the given field, e.g.
// "sku in(1,2,3)". Filter expressions pass through verbatim unless they
// are all digits, which count as a single ID. All renders as "".
func (q Query) clause(field string) string {
	switch q.kind {
	case querySingle:
		return field + " in(" + strconv.Itoa(q.id) + ")"
	case queryList:
		return field + " in(" + joinIDs(q.ids) + ")"
	case queryFilter:
		if digitsRE.MatchString(q.filter) {
			return field + " in(" + q.filter + ")"
		}
		return q.filter
	default:
		return ""
	}
}

// resourcePath renders the generic endpoint path rule: a numeric ID or
// category code becomes a direct ".json" lookup, a filter expression is
// parenthesized, and All yields the bare collection path. listField names
// the field used for List queries; endpoints that have no meaningful list
// form pass "" and reject lists.
func resourcePath(endpoint string, q Query, listField string) (string, error) {
	switch q.kind {
	case queryAll:
		return "/" + endpoint, nil
	case querySingle:
		return "/" + endpoint + "/" + strconv.Itoa(q.id) + ".json", nil
	case queryList:
		if listField == "" {
			return "", fmt.Errorf("%w: %s does not accept an ID list", ErrInvalidArgument, endpoint)
		}
		return "/" + endpoint + "(" + q.clause(listField) + ")", nil
	default:
		if resourceIDRE.MatchString(q.filter) {
			return "/" + endpoint + "/" + q.filter + ".json", nil
		}
		return "/" + endpoint + "(" + q.filter + ")", nil
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
