package domain

import (
	"net/url"
	"strings"
)

// SortOrder controls how a filtered result list is ordered.
type SortOrder string

const (
	// SortDefault groups open entries before closed ones, soonest
	// deadline first, deadlined entries before undated ones.
	SortDefault SortOrder = ""
	// SortDeadline orders strictly by deadline ascending.
	SortDeadline SortOrder = "deadline"
	// SortName orders by localized display name.
	SortName SortOrder = "name"
	// SortNewest orders by creation time, most recent first.
	SortNewest SortOrder = "newest"
	// SortCount orders by the attached-scholarship count, descending.
	SortCount SortOrder = "count"
)

// Criteria is the full set of filters a client can apply to a catalog
// listing. The zero value matches everything.
type Criteria struct {
	Query            string
	Type             string
	Deadline         DeadlineBucket
	Sort             SortOrder
	Destination      string
	Location         string
	Program          string
	WithScholarships bool
}

// IsZero reports whether no filter is active.
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// DecodeCriteria parses filter criteria from URL query parameters.
// Unknown values for enumerated parameters fall back to the zero
// value rather than erroring, so stale links keep working.
func DecodeCriteria(values url.Values) Criteria {
	c := Criteria{
		Query:       strings.TrimSpace(values.Get("q")),
		Type:        strings.TrimSpace(values.Get("type")),
		Destination: strings.TrimSpace(values.Get("dest")),
		Location:    strings.TrimSpace(values.Get("loc")),
		Program:     strings.TrimSpace(values.Get("prog")),
	}
	switch b := DeadlineBucket(values.Get("dl")); b {
	case BucketUrgent, BucketSoon:
		c.Deadline = b
	}
	switch s := SortOrder(values.Get("sort")); s {
	case SortDeadline, SortName, SortNewest, SortCount:
		c.Sort = s
	}
	if values.Get("schol") == "1" {
		c.WithScholarships = true
	}
	return c
}

// Encode renders the criteria back into URL query parameters. Only
// active filters are emitted, so the zero value encodes to an empty
// set and round-trips cleanly.
func (c Criteria) Encode() url.Values {
	values := url.Values{}
	set := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}
	set("q", c.Query)
	set("type", c.Type)
	set("dl", string(c.Deadline))
	set("sort", string(c.Sort))
	set("dest", c.Destination)
	set("loc", c.Location)
	set("prog", c.Program)
	if c.WithScholarships {
		values.Set("schol", "1")
	}
	return values
}
