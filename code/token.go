package code

import "strings"

// Token is an immutable text fragment. Only its text matters; two tokens
// with the same text are interchangeable.
type Token struct {
	text string
}

func NewToken(text string) Token {
	return Token{text: text}
}

func (t Token) String() string {
	return t.text
}

func (t Token) IsZero() bool {
	return t.text == ""
}

var (
	Space     = NewToken(" ")
	Newline   = NewToken("\n")
	LBrace    = NewToken("{")
	RBrace    = NewToken("}")
	LParen    = NewToken("(")
	RParen    = NewToken(")")
	Semicolon = NewToken(";")
	Colon     = NewToken(":")

	If      = NewToken("if")
	Else    = NewToken("else")
	Switch  = NewToken("switch")
	Case    = NewToken("case")
	Default = NewToken("default")
	Break   = NewToken("break")
	Try     = NewToken("try")
	Catch   = NewToken("catch")
	Finally = NewToken("finally")
	For     = NewToken("for")
	Foreach = NewToken("foreach")
	While   = NewToken("while")
	Do      = NewToken("do")
	In      = NewToken("in")
	Return  = NewToken("return")

	And     = NewToken("&")
	Or      = NewToken("|")
	AndAlso = NewToken("&&")
	OrElse  = NewToken("||")
	Equal   = NewToken("==")
	Assign  = NewToken("=")
)

// IndentUnit is the string added once per nesting level.
type IndentUnit string

const (
	TwoSpaces  IndentUnit = "  "
	FourSpaces IndentUnit = "    "
	TabUnit    IndentUnit = "\t"
)

const maxInternedTabs = 20

var (
	twoSpaceTabs  [maxInternedTabs + 1]Token
	fourSpaceTabs [maxInternedTabs + 1]Token
)

func init() {
	for i := 0; i <= maxInternedTabs; i++ {
		twoSpaceTabs[i] = NewToken(strings.Repeat(string(TwoSpaces), i))
		fourSpaceTabs[i] = NewToken(strings.Repeat(string(FourSpaces), i))
	}
}

// Tabs returns the indentation token for n levels of unit. Levels 0..20 of
// the two and four space units are shared.
func Tabs(unit IndentUnit, n int) Token {
	if n <= 0 {
		return Token{}
	}
	if n <= maxInternedTabs {
		switch unit {
		case TwoSpaces:
			return twoSpaceTabs[n]
		case FourSpaces:
			return fourSpaceTabs[n]
		}
	}
	return NewToken(strings.Repeat(string(unit), n))
}
