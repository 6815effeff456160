package verb

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCatalog      = errors.New("catalog has no verbs")
	ErrMissingInfinitive = errors.New("verb has no infinitive")
	ErrNoForms           = errors.New("verb has no forms")
)

// Catalog is the read-only verb collection shared by every request once loaded.
type Catalog struct {
	verbs []Verb
}

// NewCatalog validates verbs and returns a catalog holding its own copy of them.
func NewCatalog(verbs []Verb) (*Catalog, error) {
	if len(verbs) == 0 {
		return nil, ErrEmptyCatalog
	}

	owned := make([]Verb, len(verbs))
	for i, v := range verbs {
		if v.Infinitive == "" {
			return nil, fmt.Errorf("verb #%d: %w", i, ErrMissingInfinitive)
		}
		if len(v.Forms) == 0 {
			return nil, fmt.Errorf("verb %q: %w", v.Infinitive, ErrNoForms)
		}
		forms := make([]Form, len(v.Forms))
		copy(forms, v.Forms)
		v.Forms = forms
		owned[i] = v
	}

	return &Catalog{verbs: owned}, nil
}

func (c *Catalog) Len() int {
	return len(c.verbs)
}

// At returns the verb at index i. The returned Forms slice must not be modified.
func (c *Catalog) At(i int) Verb {
	return c.verbs[i]
}
