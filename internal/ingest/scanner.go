package ingest

import (
	"fmt"
	"os"
	"regexp"
)

// Session date directories are named YYYY-MM-DD; lexicographic order
// on these names is also chronological.
var sessionDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ScanDates lists candidate session dates under rawPath. When allow is
// non-empty only directories named in it are kept, otherwise all
// date-named directories are kept. Dates in exclude (already
// cataloged) are dropped, which makes re-running a scan idempotent.
// The result follows the sorted directory listing.
func ScanDates(rawPath string, allow []string, exclude map[string]bool) ([]string, error) {
	entries, err := os.ReadDir(rawPath)
	if err != nil {
		return nil, fmt.Errorf("list raw path: %w", err)
	}

	allowed := make(map[string]bool, len(allow))
	for _, d := range allow {
		allowed[d] = true
	}

	dates := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(allow) > 0 {
			if !allowed[name] {
				continue
			}
		} else if !sessionDateRe.MatchString(name) {
			continue
		}
		if exclude[name] {
			continue
		}
		dates = append(dates, name)
	}

	return dates, nil
}
