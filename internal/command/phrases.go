package command

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// phraseMatcher finds trigger phrases in lower-cased text with a single
// Aho-Corasick pass.
type phraseMatcher struct {
	machine   *goahocorasick.Machine
	kinds     map[string]Kind
	wholeWord map[Kind]bool
}

func newPhraseMatcher(phrases map[Kind][]string, wholeWord ...Kind) (*phraseMatcher, error) {
	m := &phraseMatcher{
		machine:   new(goahocorasick.Machine),
		kinds:     map[string]Kind{},
		wholeWord: map[Kind]bool{},
	}
	var patterns [][]rune
	for kind, list := range phrases {
		for _, p := range list {
			if _, dup := m.kinds[p]; dup {
				continue
			}
			m.kinds[p] = kind
			patterns = append(patterns, []rune(p))
		}
	}
	for _, k := range wholeWord {
		m.wholeWord[k] = true
	}
	if err := m.machine.Build(patterns); err != nil {
		return nil, err
	}
	return m, nil
}

// match returns the set of kinds whose phrases occur in lower.
func (m *phraseMatcher) match(lower string) map[Kind]bool {
	content := []rune(lower)
	found := map[Kind]bool{}
	if len(content) == 0 {
		return found
	}
	for _, term := range m.machine.MultiPatternSearch(content, false) {
		kind, ok := m.kinds[string(term.Word)]
		if !ok {
			continue
		}
		if m.wholeWord[kind] && !isWordAt(content, term.Pos, len(term.Word)) {
			continue
		}
		found[kind] = true
	}
	return found
}

func isWordAt(content []rune, start, length int) bool {
	if start < 0 || start+length > len(content) {
		return false
	}
	if start > 0 && isWordRune(content[start-1]) {
		return false
	}
	end := start + length
	if end < len(content) && isWordRune(content[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
