package phonefield

// OptionFilter provides search mechanics for the country dropdown. it
// scores and ranks Options against a query and maps filtered indices
// back to the source list. no UI opinions — the dropdown renders.
//
// usage:
//
//	f := NewOptionFilter(&opts)
//	f.Update("united")          // re-filter when the query changes
//	f.Items                     // ranked subset to render
//	f.Original(selectedIndex)   // map back to the source option
type OptionFilter struct {
	Items []Option // filtered+ranked subset

	source    *[]Option
	lastQuery string
	query     searchQuery
	indices   []int    // indices[i] = index into *source for Items[i]
	matches   []scored // reusable scratch for scoring
}

type scored struct {
	index int
	score int
}

// NewOptionFilter creates a filter over a source option list.
func NewOptionFilter(source *[]Option) *OptionFilter {
	f := &OptionFilter{source: source}
	f.Reset()
	return f
}

// Update re-filters the source list with a new query string.
// no-op if the query hasn't changed.
func (f *OptionFilter) Update(query string) {
	if query == f.lastQuery {
		return
	}
	f.lastQuery = query
	f.query = parseSearchQuery(query)

	if f.query.Empty() {
		f.Reset()
		return
	}

	src := *f.source
	matches := f.matches[:0]
	if cap(matches) < len(src) {
		matches = make([]scored, 0, len(src))
	}
	for i := range src {
		score, ok := f.query.Score(src[i].SearchKey)
		if ok {
			matches = append(matches, scored{index: i, score: score})
		}
	}

	// sort by score descending, then by original index ascending
	for i := 1; i < len(matches); i++ {
		j := i
		for j > 0 && scoredLess(matches[j], matches[j-1]) {
			matches[j], matches[j-1] = matches[j-1], matches[j]
			j--
		}
	}
	f.matches = matches

	f.Items = f.Items[:0]
	f.indices = f.indices[:0]
	for _, m := range matches {
		f.Items = append(f.Items, src[m.index])
		f.indices = append(f.indices, m.index)
	}
}

// Reset clears the filter, restoring all source options in order.
func (f *OptionFilter) Reset() {
	f.lastQuery = ""
	f.query = searchQuery{}

	src := *f.source
	if cap(f.Items) < len(src) {
		f.Items = make([]Option, len(src))
		f.indices = make([]int, len(src))
	} else {
		f.Items = f.Items[:len(src)]
		f.indices = f.indices[:len(src)]
	}
	copy(f.Items, src)
	for i := range f.indices {
		f.indices[i] = i
	}
}

// Refresh rebuilds the filtered view after the source slice changed,
// keeping the current query.
func (f *OptionFilter) Refresh() {
	q := f.lastQuery
	f.lastQuery = ""
	f.Reset()
	if q != "" {
		f.Update(q)
	}
}

// Original maps a filtered index back to a pointer into the source
// list. returns nil if the index is out of bounds.
func (f *OptionFilter) Original(filteredIndex int) *Option {
	if filteredIndex < 0 || filteredIndex >= len(f.indices) {
		return nil
	}
	src := *f.source
	origIdx := f.indices[filteredIndex]
	if origIdx < 0 || origIdx >= len(src) {
		return nil
	}
	return &src[origIdx]
}

// OriginalIndex maps a filtered index back to the source index.
// returns -1 if the index is out of bounds.
func (f *OptionFilter) OriginalIndex(filteredIndex int) int {
	if filteredIndex < 0 || filteredIndex >= len(f.indices) {
		return -1
	}
	return f.indices[filteredIndex]
}

// Active reports whether a query is currently applied.
func (f *OptionFilter) Active() bool {
	return !f.query.Empty()
}

// Query returns the current raw query string.
func (f *OptionFilter) Query() string {
	return f.lastQuery
}

// Len returns the number of currently visible options.
func (f *OptionFilter) Len() int {
	return len(f.Items)
}

func scoredLess(a, b scored) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.index < b.index
}
