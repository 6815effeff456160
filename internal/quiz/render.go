package quiz

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("quiz").
		Funcs(template.FuncMap{
			"tenseLabel":  TenseLabel,
			"genderLabel": GenderLabel,
		}).
		ParseFS(templateFS, "templates/*.html"),
)

type Renderer struct {
	codec Codec
}

func NewRenderer(codec Codec) *Renderer {
	return &Renderer{codec: codec}
}

type pageView struct {
	Count         int
	SessionLength int
	Finished      bool
	Question      *Question
	Token         string
	History       []HistoryEntry
}

// Render writes the full quiz page. The answer form is only emitted when the round is
// not finished and q is non-nil; its hidden fields carry q and the encoded state.
func (r *Renderer) Render(w io.Writer, q *Question, s State, finished bool) error {
	view := pageView{
		Count:         s.Count,
		SessionLength: SessionLength,
		Finished:      finished,
		History:       s.History,
	}

	if !finished && q != nil {
		token, err := r.codec.Encode(s)
		if err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
		view.Question = q
		view.Token = token
	}

	if err := pageTemplate.ExecuteTemplate(w, "page", view); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
