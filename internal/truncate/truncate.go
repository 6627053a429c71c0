// Package truncate bounds rendered tool responses to a fixed character
// budget, cutting at semantic break points where possible.
//
// The surviving-item estimate is best-effort: it counts heading-like lines
// in the kept text and falls back to a proportional guess when none are
// found, so it can disagree with the true number of whole items retained
// when headings appear inside item bodies.
package truncate

// file: internal/truncate/truncate.go

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxResponseChars is the character budget for a single tool response.
	MaxResponseChars = 50000

	// breakSearchWindow is how far back from the budget boundary the
	// truncator looks for a semantic break before giving up and cutting at
	// a plain newline.
	breakSearchWindow = 1000
)

// headingPattern matches markdown headings used to estimate how many logical
// items survived a cut.
var headingPattern = regexp.MustCompile(`(?m)^#{1,3} `)

// Info reports what a truncation dropped. It is nil when no truncation
// occurred. ReturnedCount never exceeds OriginalCount.
type Info struct {
	Truncated     bool   `json:"truncated"`
	OriginalCount int    `json:"original_count"`
	ReturnedCount int    `json:"returned_count"`
	Message       string `json:"truncation_message"`
}

// breakMarkers are the semantic break points, most structural first. For
// each marker the latest occurrence inside the search window is considered;
// the cut lands on the furthest-back candidate so a trailing heading is not
// left without its body.
var breakMarkers = []string{"\n# ", "\n## ", "\n---", "\n\n"}

// Truncate bounds content to MaxResponseChars. itemCount is how many logical
// items the full content describes and itemLabel names them for the warning
// message (e.g. "tasks"). The returned Info is nil when the content fit.
func Truncate(content string, itemCount int, itemLabel string) (string, *Info) {
	if len(content) <= MaxResponseChars {
		return content, nil
	}

	cut := findCutPoint(content)
	kept := content[:cut]

	returned := headingPattern.FindAllStringIndex(kept, -1)
	returnedCount := len(returned)
	if returnedCount == 0 && itemCount > 0 {
		// No headings to count; estimate proportionally.
		returnedCount = itemCount * len(kept) / len(content)
		if returnedCount < 1 {
			returnedCount = 1
		}
	}
	if returnedCount > itemCount {
		returnedCount = itemCount
	}

	info := &Info{
		Truncated:     true,
		OriginalCount: itemCount,
		ReturnedCount: returnedCount,
		Message: fmt.Sprintf(
			"Response truncated: showing %d of %d %s (%d character limit). "+
				"Use pagination (offset/limit), narrower filters, or a compact output format to see the rest.",
			returnedCount, itemCount, itemLabel, MaxResponseChars),
	}
	return kept, info
}

// findCutPoint picks where to cut content that exceeds the budget: the
// furthest-back semantic break inside the search window, else the last
// newline at or before the budget, else a hard cut at the budget.
func findCutPoint(content string) int {
	boundary := MaxResponseChars
	windowStart := boundary - breakSearchWindow
	if windowStart < 0 {
		windowStart = 0
	}

	best := -1
	for _, marker := range breakMarkers {
		idx := strings.LastIndex(content[:boundary], marker)
		if idx < windowStart {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}
	if best > 0 {
		return best
	}

	if nl := strings.LastIndexByte(content[:boundary], '\n'); nl > 0 {
		return nl
	}
	return boundary
}
