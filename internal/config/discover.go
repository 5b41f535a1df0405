package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Keywords preferred when several candidate inputs sit in the same folder.
var (
	ExcelKeywords = []string{"W", "week"}
	PDFKeywords   = []string{"label", "labels"}
)

// Discover returns the best candidate in dir with the given extension (".xlsx",
// ".pdf"). Keywords are tried in order against lower-cased file names; the
// first file containing one wins. Without a keyword hit the most recently
// modified file is returned. An empty string means nothing matched.
func Discover(dir, ext string, keywords []string) string {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil || len(matches) == 0 {
		return ""
	}
	var files []string
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	return PickFirstExisting(files, keywords)
}

// PickFirstExisting applies the keyword preference then the newest-mtime rule
// to files.
func PickFirstExisting(files []string, keywords []string) string {
	if len(files) == 0 {
		return ""
	}
	sorted := append([]string(nil), files...)
	sort.Strings(sorted)

	for _, k := range keywords {
		k = strings.ToLower(k)
		for _, f := range sorted {
			if strings.Contains(strings.ToLower(filepath.Base(f)), k) {
				return f
			}
		}
	}

	best := ""
	var bestTime int64
	for _, f := range sorted {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if mt := info.ModTime().UnixNano(); best == "" || mt > bestTime {
			best, bestTime = f, mt
		}
	}
	return best
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
