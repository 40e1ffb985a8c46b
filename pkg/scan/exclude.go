package scan

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sdejongh/sizesweep/pkg/models"
)

// excludeRule is one compiled exclude pattern
type excludeRule struct {
	pattern string
	dirOnly bool
	// baseOnly rules match the entry name rather than the relative path
	baseOnly bool
}

// compileExcludes validates patterns and normalises them.
// Patterns support:
//   - Simple globs matched against the base name: *.iso, *.part
//   - Directory patterns, pruned during the walk: .git/, node_modules/
//   - Path globs relative to the scan root: build/**, **/cache/*.bin
func compileExcludes(patterns []string) ([]excludeRule, error) {
	rules := make([]excludeRule, 0, len(patterns))
	for _, pattern := range patterns {
		normalized := strings.TrimSpace(filepath.ToSlash(pattern))
		if normalized == "" {
			continue
		}

		rule := excludeRule{}
		if strings.HasSuffix(normalized, "/") {
			rule.dirOnly = true
			normalized = strings.TrimSuffix(normalized, "/")
		}
		if !strings.Contains(normalized, "/") {
			rule.baseOnly = true
		}

		if !doublestar.ValidatePattern(normalized) {
			return nil, &models.ValidationError{Field: "exclude", Message: "invalid pattern: " + pattern}
		}
		rule.pattern = normalized
		rules = append(rules, rule)
	}
	return rules, nil
}

// shouldExclude checks the root-relative path of an entry against the rules
func shouldExclude(rules []excludeRule, relativePath string, isDir bool) bool {
	if len(rules) == 0 {
		return false
	}

	normalizedPath := filepath.ToSlash(relativePath)
	baseName := filepath.Base(relativePath)

	for _, rule := range rules {
		if rule.dirOnly && !isDir {
			continue
		}
		subject := normalizedPath
		if rule.baseOnly {
			subject = baseName
		}
		if matched, _ := doublestar.Match(rule.pattern, subject); matched {
			return true
		}
	}
	return false
}
