package input

import (
	"strconv"
	"strings"

	"github.com/viant/ossim/model"
	"github.com/viant/parsly"
)

// ParseVector parses a comma separated resource vector such as "1, 0, 2".
// Blank text yields a nil vector.
func ParseVector(text string) (model.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	cursor := parsly.NewCursor("", []byte(text), 0)
	var ret model.Vector
	for {
		matched := cursor.MatchAfterOptional(whitespaceToken, integerToken)
		if matched.Code != integerToken.Code {
			return nil, cursor.NewError(integerToken)
		}
		value, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return nil, err
		}
		ret = append(ret, value)

		matched = cursor.MatchAfterOptional(whitespaceToken, commaToken)
		switch matched.Code {
		case commaToken.Code:
			continue
		case parsly.EOF:
			return ret, nil
		default:
			if !cursor.HasMore() {
				return ret, nil
			}
			return nil, cursor.NewError(commaToken)
		}
	}
}

// FormatVector renders a vector the way ParseVector reads it.
func FormatVector(vector model.Vector) string {
	parts := make([]string, len(vector))
	for i, v := range vector {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
