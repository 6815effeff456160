package quiz

var tenseLabels = map[string]string{
	"presente":         "presente (現在)",
	"passato prossimo": "passato prossimo (近過去)",
}

// Genders lists every recognized gender key, in display order.
var Genders = []string{
	"masculine",
	"feminine",
	"masculine plural",
	"feminine plural",
}

var genderLabels = map[string]string{
	"masculine":        "maschile (男性)",
	"feminine":         "femminile (女性)",
	"masculine plural": "maschile plurale (男性複数)",
	"feminine plural":  "femminile plurale (女性複数)",
}

// TenseLabel returns the display label for a tense, or the tense itself when unknown.
func TenseLabel(tense string) string {
	if label, ok := tenseLabels[tense]; ok {
		return label
	}
	return tense
}

// GenderLabel returns the display label for a gender key. Unknown keys display raw.
func GenderLabel(gender string) string {
	if label, ok := genderLabels[gender]; ok {
		return label
	}
	return gender
}
