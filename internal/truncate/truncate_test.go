// Package truncate bounds rendered tool responses to a fixed character
// budget, cutting at semantic break points where possible.
package truncate

// file: internal/truncate/truncate_test.go

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sectionedContent builds markdown with n "## Task" sections of roughly
// sectionLen characters each.
func sectionedContent(n, sectionLen int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("## Task section\n\n")
		b.WriteString(strings.Repeat("body text ", sectionLen/10))
		b.WriteString("\n\n")
	}
	return b.String()
}

func TestTruncateUnderBudgetIsIdentity(t *testing.T) {
	t.Parallel()
	for _, content := range []string{
		"",
		"short",
		strings.Repeat("a", MaxResponseChars),
	} {
		got, info := Truncate(content, 3, "tasks")
		assert.Equal(t, content, got, "content within budget must pass through byte-identical")
		assert.Nil(t, info)
	}
}

func TestTruncateOverBudget(t *testing.T) {
	t.Parallel()
	content := sectionedContent(200, 400)
	require.Greater(t, len(content), MaxResponseChars)

	got, info := Truncate(content, 200, "tasks")
	require.NotNil(t, info)
	assert.True(t, info.Truncated)
	assert.LessOrEqual(t, len(got), MaxResponseChars)
	assert.True(t, strings.HasPrefix(content, got), "kept text must be a prefix of the original")
	assert.Equal(t, 200, info.OriginalCount)
	assert.LessOrEqual(t, info.ReturnedCount, info.OriginalCount)
	assert.Greater(t, info.ReturnedCount, 0)
	assert.Contains(t, info.Message, "tasks")
	assert.Contains(t, info.Message, "pagination")
}

// With headings present near the boundary the cut must land on a line break,
// not mid-line.
func TestTruncateCutsAtSemanticBreak(t *testing.T) {
	t.Parallel()
	content := sectionedContent(300, 300)
	require.Greater(t, len(content), MaxResponseChars)

	got, info := Truncate(content, 300, "tasks")
	require.NotNil(t, info)
	require.Less(t, len(got), len(content))
	assert.Equal(t, byte('\n'), content[len(got)], "cut point must sit at a line boundary")
}

// Without any heading pattern the estimate falls back to a proportional
// guess, clamped to at least one item.
func TestTruncateProportionalEstimate(t *testing.T) {
	t.Parallel()
	line := strings.Repeat("x", 99) + "\n"
	content := strings.Repeat(line, 700) // 70000 chars, no headings
	require.Greater(t, len(content), MaxResponseChars)

	got, info := Truncate(content, 10, "records")
	require.NotNil(t, info)
	assert.LessOrEqual(t, len(got), MaxResponseChars)
	assert.GreaterOrEqual(t, info.ReturnedCount, 1)
	assert.LessOrEqual(t, info.ReturnedCount, 10)
	// 10 items, ~5/7 of the content kept: proportional estimate of 7.
	assert.Equal(t, 7, info.ReturnedCount)
}

// A single line longer than the whole budget leaves no newline to cut at;
// the truncator must hard-cut at the exact budget.
func TestTruncateHardCutWithoutNewline(t *testing.T) {
	t.Parallel()
	content := strings.Repeat("z", MaxResponseChars+500)
	got, info := Truncate(content, 1, "blobs")
	require.NotNil(t, info)
	assert.Equal(t, MaxResponseChars, len(got))
	assert.Equal(t, 1, info.ReturnedCount)
}
