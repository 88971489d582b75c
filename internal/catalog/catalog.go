package catalog

import (
	"strings"

	"github.com/iurnickita/binday/internal/model"
)

// Порядок опроса, когда тип не указан
var roundTypes = []model.RoundType{
	model.RoundTypeOrganic,
	model.RoundTypeRecycle,
	model.RoundTypeDomestic,
}

var phrases = map[model.RoundType]string{
	model.RoundTypeOrganic:  "organic waste",
	model.RoundTypeRecycle:  "recycling",
	model.RoundTypeDomestic: "domestic waste",
}

// Цвета контейнеров (Кембридж)
var colors = map[string]model.RoundType{
	"green": model.RoundTypeOrganic,
	"blue":  model.RoundTypeRecycle,
	"black": model.RoundTypeDomestic,
}

// Category is the outcome of resolving a requested bin token. An unresolvable
// category keeps the user's token and never matches a collection event.
type Category struct {
	Token     string
	RoundType model.RoundType
	Phrase    string
	Resolved  bool
}

// Key identifies the category in a result: the round type when resolved,
// the literal token otherwise.
func (c Category) Key() string {
	if c.Resolved {
		return string(c.RoundType)
	}
	return c.Token
}

// Resolve maps a canonical round-type code (case-sensitive) or a bin colour
// (case-insensitive) to a category.
func Resolve(token string) Category {
	if phrase, ok := phrases[model.RoundType(token)]; ok {
		return Category{Token: token, RoundType: model.RoundType(token), Phrase: phrase, Resolved: true}
	}
	if rt, ok := colors[strings.ToLower(token)]; ok {
		return Category{Token: token, RoundType: rt, Phrase: token + " bin", Resolved: true}
	}
	return Category{Token: token, Phrase: token + " bin"}
}

// All returns every catalog category in catalog order.
func All() []Category {
	categories := make([]Category, 0, len(roundTypes))
	for _, rt := range roundTypes {
		categories = append(categories, Resolve(string(rt)))
	}
	return categories
}

func Phrase(rt model.RoundType) (string, bool) {
	phrase, ok := phrases[rt]
	return phrase, ok
}
