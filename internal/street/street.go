package street

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Сокращения типов улиц
var abbreviations = map[string]string{
	"RD":   "ROAD",
	"ST":   "STREET",
	"AVE":  "AVENUE",
	"AV":   "AVENUE",
	"BLVD": "BOULEVARD",
	"PL":   "PLACE",
	"DR":   "DRIVE",
	"LN":   "LANE",
	"GR":   "GROVE",
	"CL":   "CLOSE",
	"SQ":   "SQUARE",
}

// Normalize приводит название улицы к каноническому виду для сравнения:
// верхний регистр, одиночные пробелы, раскрытые сокращения.
func Normalize(name string) string {
	// cases.Caser хранит состояние, поэтому создаётся на каждый вызов
	upper := cases.Upper(language.BritishEnglish).String(name)

	tokens := strings.Fields(upper)
	for i, token := range tokens {
		if full, ok := abbreviations[token]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " ")
}
