package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type PickerItem struct {
	ID     int
	Label  string
	Meta   string
	Search string
}

// Picker filters items by a fuzzy query. Subsequence matches rank first;
// words within a small edit distance of the query still match so typos in
// slide titles are forgiven.
type Picker struct {
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{}
	p.SetItems(items)
	return p
}

func (p *Picker) Query() string { return p.query }

func (p *Picker) Cursor() int { return p.cursor }

func (p *Picker) Items() []PickerItem {
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	p.items = append([]PickerItem(nil), items...)
	p.rebuildFiltered()
}

func (p *Picker) SetQuery(q string) {
	if q == p.query {
		return
	}
	p.query = q
	p.rebuildFiltered()
}

func (p *Picker) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p.cursor < len(p.filtered)-1 {
		p.cursor++
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[min(max(p.cursor, 0), len(p.filtered)-1)], true
}

type scoredPickerItem struct {
	item  PickerItem
	score int
	index int
}

func (p *Picker) rebuildFiltered() {
	q := strings.TrimSpace(p.query)
	scored := make([]scoredPickerItem, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		matched, score := fuzzyMatchScore(search, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredPickerItem{item: item, score: score, index: idx})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})
	p.filtered = p.filtered[:0]
	for _, row := range scored {
		p.filtered = append(p.filtered, row.item)
	}
	p.cursor = min(max(p.cursor, 0), max(len(p.filtered)-1, 0))
}

func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	if ok, score := subsequenceScore(labelLower, queryLower); ok {
		if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
			score += 20
		}
		return true, score
	}
	return typoScore(labelLower, queryLower)
}

func subsequenceScore(label, query string) (bool, int) {
	matchIdx := make([]int, 0, len(query))
	searchFrom := 0
	for i := 0; i < len(query); i++ {
		ch := query[i]
		found := false
		for j := searchFrom; j < len(label); j++ {
			if label[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(query)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	return true, score
}

// typoScore matches query against single words of label by edit distance.
// One edit is allowed from three characters, two from seven.
func typoScore(label, query string) (bool, int) {
	allowed := 0
	switch {
	case len(query) >= 7:
		allowed = 2
	case len(query) >= 3:
		allowed = 1
	}
	if allowed == 0 {
		return false, 0
	}
	best := -1
	for _, word := range strings.Fields(label) {
		d := levenshtein.ComputeDistance(word, query)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 || best > allowed {
		return false, 0
	}
	return true, len(query) - 2*best
}
