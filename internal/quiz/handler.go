package quiz

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/saulo-duarte/coniugo/internal/config"
)

type Handler struct {
	service      QuizService
	renderer     *Renderer
	maxFormBytes int64
}

func NewHandler(s QuizService, renderer *Renderer, maxFormBytes int64) *Handler {
	return &Handler{
		service:      s,
		renderer:     renderer,
		maxFormBytes: maxFormBytes,
	}
}

func (h *Handler) NewRound(w http.ResponseWriter, r *http.Request) {
	out := h.service.Start(r.Context())
	h.render(w, r, out)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	form := h.parseForm(w, r)

	sub := Submission{
		Question: Question{
			Infinitive: form.Get("q_infinitive"),
			Ja:         form.Get("q_ja"),
			Tense:      form.Get("q_tense"),
			Pronoun:    form.Get("q_pronoun"),
			Gender:     form.Get("q_gender"),
			Answer:     form.Get("q_answer"),
		},
		UserAnswer: form.Get("user_answer"),
		Token:      form.Get("state"),
	}

	out := h.service.GradeAndAdvance(r.Context(), sub)
	h.render(w, r, out)
}

// parseForm reads the urlencoded body. A body that cannot be read or parsed is treated
// as an empty form so every field defaults to "".
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) url.Values {
	log := config.WithContext(r.Context())

	if h.maxFormBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFormBytes)
	}
	if err := r.ParseForm(); err != nil {
		log.WithError(err).Warn("Corpo do formulário inválido, usando formulário vazio")
		return url.Values{}
	}
	if r.PostForm == nil {
		return url.Values{}
	}
	return r.PostForm
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, out Outcome) {
	log := config.WithContext(r.Context())

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, out.Next, out.State, out.Finished); err != nil {
		log.WithError(err).Error("Erro ao renderizar página do quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	config.HTML(w, http.StatusOK, buf.Bytes())
}
