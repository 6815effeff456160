package verb

// Verb is one catalog record: an infinitive, its translation and every conjugated form.
type Verb struct {
	Infinitive string `json:"infinitive" yaml:"infinitive"`
	Ja         string `json:"ja" yaml:"ja"`
	Forms      []Form `json:"forms" yaml:"forms"`
}

// Form is one conjugated realization. Gender is empty for forms that carry no gender.
type Form struct {
	Tense   string `json:"tense" yaml:"tense"`
	Pronoun string `json:"pronoun" yaml:"pronoun"`
	Value   string `json:"value" yaml:"value"`
	Gender  string `json:"gender,omitempty" yaml:"gender,omitempty"`
}
