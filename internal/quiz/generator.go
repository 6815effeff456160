package quiz

import (
	"math/rand"

	"github.com/saulo-duarte/coniugo/internal/verb"
)

type Generator struct {
	catalog *verb.Catalog
	intn    func(n int) int
}

func NewGenerator(catalog *verb.Catalog) *Generator {
	return NewGeneratorWithRand(catalog, rand.Intn)
}

// NewGeneratorWithRand uses intn as the source of uniform choices in [0, n).
// intn must be safe for concurrent use if the generator is shared.
func NewGeneratorWithRand(catalog *verb.Catalog, intn func(n int) int) *Generator {
	return &Generator{catalog: catalog, intn: intn}
}

// Pick draws a verb, then one of its forms. A form without gender gets a gender drawn
// from the full label set so the page never reveals that the form is ungendered.
func (g *Generator) Pick() Question {
	v := g.catalog.At(g.intn(g.catalog.Len()))
	f := v.Forms[g.intn(len(v.Forms))]

	gender := f.Gender
	if gender == "" {
		gender = Genders[g.intn(len(Genders))]
	}

	return Question{
		Infinitive: v.Infinitive,
		Ja:         v.Ja,
		Tense:      f.Tense,
		Pronoun:    f.Pronoun,
		Answer:     f.Value,
		Gender:     gender,
	}
}
