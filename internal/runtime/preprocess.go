package runtime

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// includePrefix is the directive token: a line beginning with "include!"
// followed by a glob (optionally double-quoted).
const includePrefix = "include!"

// preprocess textually replaces every include! line in text with the
// concatenated, recursively preprocessed contents of every file matching
// its glob, resolved relative to baseDir. A nested include! resolves
// relative to the file that contains it, not the original top-level file,
// so a script can be relocated without its includes breaking.
func preprocess(text, baseDir string) (string, error) {
	seen := make(map[string]bool)
	return preprocessLines(text, baseDir, seen)
}

func preprocessLines(text, baseDir string, seen map[string]bool) (string, error) {
	lines := strings.Split(text, "\n")
	var out strings.Builder
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, includePrefix) {
			out.WriteString(line)
		} else {
			pattern := strings.TrimSpace(strings.TrimPrefix(trimmed, includePrefix))
			pattern = unquote(pattern)
			if pattern == "" {
				return "", fmt.Errorf("include!: missing glob pattern")
			}
			included, err := resolveInclude(pattern, baseDir, seen)
			if err != nil {
				return "", err
			}
			out.WriteString(included)
		}
		if i < len(lines)-1 {
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}

// resolveInclude globs pattern relative to baseDir, reads and recursively
// preprocesses every match (cwd set to that match's own directory), and
// concatenates the results. A target already seen for this top-level
// preprocess call is skipped, so the same file included twice (directly
// or via two different globs) contributes its contents only once.
func resolveInclude(pattern, baseDir string, seen map[string]bool) (string, error) {
	full := pattern
	if !filepath.IsAbs(full) {
		full = filepath.Join(baseDir, pattern)
	}

	matches, err := doublestar.FilepathGlob(full)
	if err != nil {
		return "", fmt.Errorf("include! %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var out strings.Builder
	for _, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil {
			return "", err
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true

		content, err := os.ReadFile(m)
		if err != nil {
			return "", fmt.Errorf("include! %q: %w", pattern, err)
		}
		nested, err := preprocessLines(string(content), filepath.Dir(m), seen)
		if err != nil {
			return "", err
		}
		out.WriteString(nested)
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// unquote strips a single layer of surrounding double quotes, if present.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
