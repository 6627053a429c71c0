// Package paginate enforces the pagination alignment invariant and computes
// continuation metadata for paginated tool responses.
//
// The upstream API addresses pages by index (offset divided by page size),
// not by item offset. An offset that is not an exact multiple of the limit
// would silently return the wrong window of items: page = floor(offset/limit)
// discards the remainder, so offset=25 with limit=20 would return items
// 20-39, not 25-44. ValidatePage rejects such requests before any network
// call is made.
package paginate

// file: internal/paginate/paginate.go

import (
	"github.com/cockroachdb/errors"
)

// Pagination bounds for tool calls.
const (
	// DefaultLimit is used when a tool call omits the limit parameter.
	DefaultLimit = 50
	// MaxLimit is the largest page size the upstream task endpoints accept.
	MaxLimit = 100
)

// Info describes one page of results and how to fetch the next one.
// NextOffset is present exactly when HasMore is true, and then always equals
// Offset + Count, so feeding it back as the next request's offset is always
// alignment-valid.
type Info struct {
	Total      *int `json:"total,omitempty"`
	Count      int  `json:"count"`
	Offset     int  `json:"offset"`
	HasMore    bool `json:"has_more"`
	NextOffset *int `json:"next_offset,omitempty"`
}

// ValidatePage checks a page request before any network call. The offset
// must be non-negative and an exact multiple of the limit; the limit must be
// in (0, MaxLimit].
func ValidatePage(offset, limit int) error {
	if limit <= 0 || limit > MaxLimit {
		return errors.Newf("invalid limit %d: limit must be between 1 and %d", limit, MaxLimit)
	}
	if offset < 0 {
		return errors.Newf("invalid offset %d: offset must not be negative", offset)
	}
	if offset%limit != 0 {
		return errors.Newf(
			"invalid offset %d: offset must be a multiple of limit (limit is %d, nearest valid offsets are %d and %d)",
			offset, limit, (offset/limit)*limit, (offset/limit+1)*limit)
	}
	return nil
}

// PageIndex converts a validated item offset into the upstream page index.
func PageIndex(offset, limit int) int {
	return offset / limit
}

// Compute derives the pagination info for a page of count items fetched at
// offset with the given limit. When the collection total is known, there is
// more data iff offset+count < total. When it is unknown, a full page is
// treated as a signal that more data may exist: an API returning exactly
// limit items has not proven exhaustion.
func Compute(total *int, count, offset, limit int) Info {
	info := Info{
		Total:  total,
		Count:  count,
		Offset: offset,
	}
	if total != nil {
		info.HasMore = offset+count < *total
	} else {
		info.HasMore = count == limit
	}
	if info.HasMore {
		next := offset + count
		info.NextOffset = &next
	}
	return info
}
