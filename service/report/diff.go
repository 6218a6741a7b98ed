package report

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffStats summarises a document diff.
type DiffStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Diff returns a unified diff between two encoded documents together with
// per-line statistics.  An empty patch means the documents are identical.
func Diff(fromName, toName string, from, to []byte, contextLines int) (string, DiffStats, error) {
	if contextLines <= 0 {
		contextLines = 3
	}
	if string(from) == string(to) {
		return "", DiffStats{}, nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(from)),
		B:        difflib.SplitLines(string(to)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  contextLines,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", DiffStats{}, err
	}
	return patch, diffStats(patch), nil
}

func diffStats(patch string) DiffStats {
	stats := DiffStats{}
	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			stats.Additions++
		case strings.HasPrefix(line, "-"):
			stats.Deletions++
		}
	}
	return stats
}
