package bookmirror

import "regexp"

// ChapterFilter restricts which TOC entries are mirrored.
type ChapterFilter struct {
	// Include patterns - if set, only chapters whose URL matches at least
	// one pattern are kept.
	Include []*regexp.Regexp
}

// CompileFilter builds a ChapterFilter from raw patterns.
// Returns EINVALID if any pattern does not compile. A nil filter is
// returned for an empty pattern list, and a nil filter keeps everything.
func CompileFilter(patterns []string) (*ChapterFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	include := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid filter pattern %q: %v", p, err)
		}
		include = append(include, re)
	}
	return &ChapterFilter{Include: include}, nil
}

// Match returns true if the chapter URL passes the filter.
// If the filter is nil, all chapters pass.
func (f *ChapterFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	for _, re := range f.Include {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
