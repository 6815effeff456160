package quiz_test

import (
	"testing"

	"github.com/saulo-duarte/coniugo/internal/verb"
)

func testCatalog(t *testing.T) *verb.Catalog {
	t.Helper()
	catalog, err := verb.NewCatalog([]verb.Verb{
		{
			Infinitive: "mangiare",
			Ja:         "食べる",
			Forms: []verb.Form{
				{Tense: "presente", Pronoun: "io", Value: "mangio"},
				{Tense: "presente", Pronoun: "tu", Value: "mangi"},
			},
		},
		{
			Infinitive: "andare",
			Ja:         "行く",
			Forms: []verb.Form{
				{Tense: "passato prossimo", Pronoun: "io", Value: "sono andata", Gender: "feminine"},
			},
		},
	})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return catalog
}

// sequence returns an intn stub that replays picks in order.
func sequence(t *testing.T, picks ...int) func(int) int {
	t.Helper()
	i := 0
	return func(n int) int {
		if i >= len(picks) {
			t.Fatalf("unexpected draw #%d", i+1)
		}
		p := picks[i]
		i++
		if p >= n {
			t.Fatalf("pick %d out of range [0,%d)", p, n)
		}
		return p
	}
}
