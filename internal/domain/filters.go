package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Matcher reports whether a contract name satisfies one configured pattern.
// The shipped implementation compiles regular expressions; anything that can
// answer yes/no for a name works.
type Matcher interface {
	Match(name string) bool
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) Match(name string) bool {
	return m.re.MatchString(name)
}

func compileMatchers(patterns []string) ([]Matcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	matchers := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		matchers = append(matchers, regexpMatcher{re: re})
	}
	return matchers, nil
}

// ContractFilter decides which contract names survive consolidation.
// Excludes are checked first and always win; a non-empty includes list then
// requires at least one match; with no includes configured every name passes.
// Both checks are total: a filter never fails at match time.
type ContractFilter struct {
	includes []Matcher
	excludes []Matcher
}

// NewContractFilter compiles include and exclude patterns into a filter.
// Pattern compilation errors are configuration errors and surface here,
// never during matching.
func NewContractFilter(includes, excludes []string) (*ContractFilter, error) {
	inc, err := compileMatchers(includes)
	if err != nil {
		return nil, fmt.Errorf("includes: %w", err)
	}
	exc, err := compileMatchers(excludes)
	if err != nil {
		return nil, fmt.Errorf("excludes: %w", err)
	}
	return &ContractFilter{includes: inc, excludes: exc}, nil
}

// ShouldInclude reports whether a contract name participates in the output.
func (f *ContractFilter) ShouldInclude(name string) bool {
	for _, m := range f.excludes {
		if m.Match(name) {
			return false
		}
	}
	if len(f.includes) == 0 {
		return true
	}
	for _, m := range f.includes {
		if m.Match(name) {
			return true
		}
	}
	return false
}

// NetworkID derives the network identifier from an export file name by
// stripping the extension from its base name ("mainnet.json" -> "mainnet").
// The mapping is a convention of the export layout; nothing inside the file
// declares it.
func NetworkID(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// NetworkFilter decides which export files participate, keyed on the network
// id derived from each file's name. Identifiers are matched exactly, not as
// patterns. Absent both lists, every file is included.
type NetworkFilter struct {
	include map[string]struct{}
	exclude map[string]struct{}
}

// NewNetworkFilter builds a filter over exact network identifiers.
func NewNetworkFilter(include, exclude []string) *NetworkFilter {
	f := &NetworkFilter{}
	if len(include) > 0 {
		f.include = make(map[string]struct{}, len(include))
		for _, id := range include {
			f.include[id] = struct{}{}
		}
	}
	if len(exclude) > 0 {
		f.exclude = make(map[string]struct{}, len(exclude))
		for _, id := range exclude {
			f.exclude[id] = struct{}{}
		}
	}
	return f
}

// ShouldIncludeFile reports whether an export file participates in the build.
func (f *NetworkFilter) ShouldIncludeFile(fileName string) bool {
	id := NetworkID(fileName)
	if f.include != nil {
		if _, ok := f.include[id]; !ok {
			return false
		}
	}
	if f.exclude != nil {
		if _, ok := f.exclude[id]; ok {
			return false
		}
	}
	return true
}
