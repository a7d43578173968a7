// Package render derives filesystem artifacts from coerced scenarios:
// safe filenames, collision-free paths and rendered card documents.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	// Allow-list: ASCII alphanumerics, the Hebrew block, space,
	// underscore, dot and dash. Everything else is stripped.
	unsafeChars = regexp.MustCompile(`[^0-9A-Za-z\x{0590}-\x{05FF} _.-]`)
)

// Slug derives a filesystem-safe name from a free-text title, preserving
// Hebrew. Idempotent: Slug(Slug(x)) == Slug(x).
func Slug(title string) string {
	if title == "" {
		title = "scenario"
	}
	title = whitespaceRun.ReplaceAllString(title, " ")
	title = strings.TrimSpace(title)
	title = strings.ReplaceAll(title, "/", "-")
	title = strings.ReplaceAll(title, "\\", "-")
	title = unsafeChars.ReplaceAllString(title, "")
	title = strings.ReplaceAll(title, " ", "_")
	if title == "" {
		return "scenario"
	}
	return title
}

// UniquePath returns dir/name, or the first dir/stem-N.ext (N = 1, 2, …)
// that does not exist yet. The existence check is a plain stat loop: a
// single pipeline run is the only writer to its output directory.
func UniquePath(dir, name string) string {
	p := filepath.Join(dir, name)
	if !exists(p) {
		return p
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		cand := filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, i, ext))
		if !exists(cand) {
			return cand
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
