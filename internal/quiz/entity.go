package quiz

// SessionLength is the number of graded answers that completes a round.
const SessionLength = 10

// Question is what the page asks. It is rebuilt from the hidden form fields on every
// POST, so the server never remembers which question it asked.
type Question struct {
	Infinitive string
	Ja         string
	Tense      string
	Pronoun    string
	Answer     string
	Gender     string
}

// HistoryEntry is one graded attempt. Entries are only ever appended.
type HistoryEntry struct {
	Infinitive string `json:"infinitive"`
	Ja         string `json:"ja"`
	Tense      string `json:"tense"`
	Pronoun    string `json:"pronoun"`
	Gender     string `json:"gender"`
	UserAnswer string `json:"user_answer"`
	Correct    string `json:"correct"`
	OK         bool   `json:"ok"`
}

// State is the quiz progress carried by the client between requests.
// Count always equals len(History) for a valid state.
type State struct {
	Count   int            `json:"count"`
	History []HistoryEntry `json:"history"`
}

func EmptyState() State {
	return State{Count: 0, History: []HistoryEntry{}}
}

// Submission holds the fields posted back by the answer form.
type Submission struct {
	Question   Question
	UserAnswer string
	Token      string
}

// Outcome is the result of a request: the state to embed in the next page, whether
// the round is over and, if not, the next question.
type Outcome struct {
	State    State
	Finished bool
	Next     *Question
}
