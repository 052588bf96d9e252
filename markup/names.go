package markup

import (
	_ "embed"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// names.ebnf describes the tag and attribute names a table may declare.
// Every name becomes part of a C# identifier after camel casing, so the
// grammar only admits letters, digits and separators strcase understands.
//
//go:embed names.ebnf
var namesSource string

var names = loadNames()

func loadNames() ebnf.Grammar {
	g, err := ebnf.Parse("names.ebnf", strings.NewReader(namesSource))
	if err != nil {
		panic(err)
	}
	if err := ebnf.Verify(g, "Name"); err != nil {
		panic(err)
	}
	return g
}

type matchKey struct {
	name   string
	offset int
}

// nameMatcher matches a whole string against one production. Match
// lengths are byte counts; -1 means no match.
type nameMatcher struct {
	input    string
	memo     map[matchKey]int
	visiting map[matchKey]bool
}

func validTagName(s string) bool       { return matchName("TagName", s) }
func validAttributeName(s string) bool { return matchName("AttributeName", s) }

func matchName(production, s string) bool {
	if s == "" {
		return false
	}
	m := &nameMatcher{
		input:    s,
		memo:     make(map[matchKey]int),
		visiting: make(map[matchKey]bool),
	}
	return m.production(production, 0) == len(s)
}

func (m *nameMatcher) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		if strings.HasPrefix(m.input[offset:], e.String) {
			return len(e.String)
		}
		return -1

	case *ebnf.Range:
		r, size := utf8.DecodeRuneInString(m.input[offset:])
		if size == 0 {
			return -1
		}
		lo, _ := utf8.DecodeRuneInString(e.Begin.String)
		hi, _ := utf8.DecodeRuneInString(e.End.String)
		if r < lo || r > hi {
			return -1
		}
		return size

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n := m.match(item, offset+total)
			if n < 0 {
				return -1
			}
			total += n
		}
		return total

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n := m.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		total := 0
		for {
			n := m.match(e.Body, offset+total)
			if n <= 0 {
				return total
			}
			total += n
		}

	case *ebnf.Option:
		if n := m.match(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *ebnf.Group:
		return m.match(e.Body, offset)

	case *ebnf.Name:
		return m.production(e.String, offset)
	}
	return -1
}

func (m *nameMatcher) production(name string, offset int) int {
	key := matchKey{name: name, offset: offset}
	if n, ok := m.memo[key]; ok {
		return n
	}
	// Left recursion never matches.
	if m.visiting[key] {
		return -1
	}
	prod, ok := names[name]
	if !ok || prod.Expr == nil {
		return -1
	}

	m.visiting[key] = true
	n := m.match(prod.Expr, offset)
	delete(m.visiting, key)

	m.memo[key] = n
	return n
}
