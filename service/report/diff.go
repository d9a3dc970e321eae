package report

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffStats captures basic statistics about a unified-diff output.
type DiffStats struct {
	Added   int
	Removed int
}

// Diff renders a unified diff between the YAML forms of two snapshots. An
// empty string means the snapshots encode identically.
func Diff(from, to *Snapshot, contextLines int) (string, DiffStats, error) {
	if contextLines <= 0 {
		contextLines = 3
	}
	fromData, err := Encode(from)
	if err != nil {
		return "", DiffStats{}, err
	}
	toData, err := Encode(to)
	if err != nil {
		return "", DiffStats{}, err
	}
	if string(fromData) == string(toData) {
		return "", DiffStats{}, nil
	}

	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(fromData)),
		B:        difflib.SplitLines(string(toData)),
		FromFile: Name(from.Timestamp),
		ToFile:   Name(to.Timestamp),
		Context:  contextLines,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", DiffStats{}, err
	}

	var stats DiffStats
	for _, line := range strings.Split(patch, "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			stats.Added++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			stats.Removed++
		}
	}
	return patch, stats, nil
}
