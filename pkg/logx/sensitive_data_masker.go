package logx

import (
	"fmt"
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var defaultSensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile(`(?s)("[Pp]assword":\s?").+?(")`),
	regexp.MustCompile(`(?s)("accessToken":\s?").+?(")`),
}

type SensitiveDataMasker struct {
	patterns []*regexp.Regexp
}

// NewSensitiveDataMasker masks credentials plus the string values of the
// given JSON fields.
func NewSensitiveDataMasker(jsonFields ...string) SensitiveDataMasker {
	patterns := append([]*regexp.Regexp(nil), defaultSensitiveDataPatterns...)

	for _, field := range jsonFields {
		patterns = append(patterns, regexp.MustCompile(fmt.Sprintf(`(?s)("%s":\s?").+?(")`, regexp.QuoteMeta(field))))
	}

	return SensitiveDataMasker{patterns: patterns}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range s.patterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
