// Package paginate enforces the pagination alignment invariant and computes
// continuation metadata for paginated tool responses.
package paginate

// file: internal/paginate/paginate_test.go

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePage(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		offset        int
		limit         int
		expectError   bool
		errorContains string
	}{
		{name: "zero offset", offset: 0, limit: 20},
		{name: "aligned offset", offset: 40, limit: 20},
		{name: "aligned at max limit", offset: 300, limit: 100},
		{name: "misaligned offset", offset: 25, limit: 20, expectError: true, errorContains: "multiple of limit"},
		{name: "misaligned by one", offset: 101, limit: 100, expectError: true, errorContains: "multiple of limit"},
		{name: "negative offset", offset: -20, limit: 20, expectError: true, errorContains: "negative"},
		{name: "zero limit", offset: 0, limit: 0, expectError: true, errorContains: "limit"},
		{name: "limit above max", offset: 0, limit: 101, expectError: true, errorContains: "between 1 and 100"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePage(tc.offset, tc.limit)
			if !tc.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

// The rejection message must identify the offending values so an agent can
// correct the call: the literal offset, the literal limit, and the alignment
// relationship.
func TestValidatePageMessageNamesValues(t *testing.T) {
	t.Parallel()
	err := ValidatePage(25, 20)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "25")
	assert.Contains(t, msg, "20")
	assert.Contains(t, msg, "multiple of limit")
}

// Acceptance is exactly offset mod limit == 0, and accepted pairs map onto a
// page index that reproduces the offset.
func TestAlignmentProperty(t *testing.T) {
	t.Parallel()
	for limit := 1; limit <= MaxLimit; limit += 7 {
		for offset := 0; offset <= 5*limit; offset += max(1, limit/3) {
			err := ValidatePage(offset, limit)
			if offset%limit == 0 {
				if err != nil {
					t.Fatalf("ValidatePage(%d, %d) unexpectedly rejected: %v", offset, limit, err)
				}
				if page := PageIndex(offset, limit); page*limit != offset {
					t.Fatalf("PageIndex(%d, %d) = %d does not reproduce the offset", offset, limit, page)
				}
			} else if err == nil {
				t.Fatalf("ValidatePage(%d, %d) accepted a misaligned offset", offset, limit)
			} else if !strings.Contains(err.Error(), "multiple of limit") {
				t.Fatalf("ValidatePage(%d, %d) error %q lacks the alignment phrase", offset, limit, err)
			}
		}
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()
	total225 := 225

	testCases := []struct {
		name       string
		total      *int
		count      int
		offset     int
		limit      int
		hasMore    bool
		nextOffset *int
	}{
		{name: "unknown total, full page implies more", count: 20, offset: 0, limit: 20, hasMore: true, nextOffset: intPtr(20)},
		{name: "unknown total, short page implies done", count: 7, offset: 40, limit: 20, hasMore: false},
		{name: "unknown total, empty page implies done", count: 0, offset: 60, limit: 20, hasMore: false},
		{name: "known total, middle page", total: &total225, count: 100, offset: 0, limit: 100, hasMore: true, nextOffset: intPtr(100)},
		{name: "known total, last page", total: &total225, count: 25, offset: 200, limit: 100, hasMore: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			info := Compute(tc.total, tc.count, tc.offset, tc.limit)
			assert.Equal(t, tc.count, info.Count)
			assert.Equal(t, tc.offset, info.Offset)
			assert.Equal(t, tc.hasMore, info.HasMore)
			if tc.nextOffset == nil {
				assert.Nil(t, info.NextOffset, "next_offset must be absent when has_more is false")
			} else {
				require.NotNil(t, info.NextOffset)
				assert.Equal(t, *tc.nextOffset, *info.NextOffset)
				assert.Equal(t, info.Offset+info.Count, *info.NextOffset)
			}
		})
	}
}

// A next_offset handed back by Compute, fed in as the next offset with the
// same limit, is always alignment-valid.
func TestNextOffsetRoundTrip(t *testing.T) {
	t.Parallel()
	for _, limit := range []int{1, 10, 20, 50, 100} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			t.Parallel()
			offset := 0
			for hops := 0; hops < 5; hops++ {
				require.NoError(t, ValidatePage(offset, limit))
				info := Compute(nil, limit, offset, limit)
				require.True(t, info.HasMore)
				require.NotNil(t, info.NextOffset)
				offset = *info.NextOffset
			}
		})
	}
}

func intPtr(n int) *int { return &n }
