package input

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes start at 1 to avoid clashing with parsly.EOF and the invalid code.
const (
	whitespaceCode = iota + 1
	integerCode
	commaCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	integerToken    = parsly.NewToken(integerCode, "Integer", newIntegerMatcher())
	commaToken      = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
)

func newIntegerMatcher() parsly.Matcher {
	return &integerMatcher{}
}

// integerMatcher matches an optionally signed decimal integer
type integerMatcher struct{}

func (m *integerMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}
	matched := 0
	if input[pos] == '-' || input[pos] == '+' {
		matched++
	}
	digits := 0
	for i := pos + matched; i < size && isDigit(input[i]); i++ {
		digits++
	}
	if digits == 0 {
		return 0
	}
	return matched + digits
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
