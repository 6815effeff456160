package quiz

import (
	"context"
	"strings"

	"github.com/saulo-duarte/coniugo/internal/config"
)

type QuizService interface {
	Start(ctx context.Context) Outcome
	GradeAndAdvance(ctx context.Context, sub Submission) Outcome
}

type quizService struct {
	codec     Codec
	generator *Generator
}

func NewService(codec Codec, generator *Generator) QuizService {
	return &quizService{
		codec:     codec,
		generator: generator,
	}
}

func (s *quizService) Start(ctx context.Context) Outcome {
	q := s.generator.Pick()
	return Outcome{State: EmptyState(), Next: &q}
}

func (s *quizService) GradeAndAdvance(ctx context.Context, sub Submission) Outcome {
	log := config.WithContext(ctx)

	prior := s.codec.Decode(sub.Token)
	next := Grade(prior, sub.Question, sub.UserAnswer)
	entry := next.History[len(next.History)-1]

	log.WithField("count", next.Count).
		WithField("ok", entry.OK).
		Debug("Resposta corrigida")

	if Finished(next) {
		log.Infof("Rodada concluída: %d/%d corretas", CorrectCount(next), next.Count)
		return Outcome{State: next, Finished: true}
	}

	q := s.generator.Pick()
	return Outcome{State: next, Next: &q}
}

// Grade appends the graded attempt to a copy of prior and returns the new state.
// Both answers are trimmed and compared with a simple lowercase fold.
func Grade(prior State, asked Question, userAnswer string) State {
	user := strings.TrimSpace(userAnswer)
	correct := strings.TrimSpace(asked.Answer)

	history := make([]HistoryEntry, len(prior.History), len(prior.History)+1)
	copy(history, prior.History)
	history = append(history, HistoryEntry{
		Infinitive: asked.Infinitive,
		Ja:         asked.Ja,
		Tense:      asked.Tense,
		Pronoun:    asked.Pronoun,
		Gender:     asked.Gender,
		UserAnswer: user,
		Correct:    correct,
		OK:         strings.ToLower(user) == strings.ToLower(correct),
	})

	return State{Count: len(history), History: history}
}

func Finished(s State) bool {
	return s.Count >= SessionLength
}

func CorrectCount(s State) int {
	n := 0
	for _, e := range s.History {
		if e.OK {
			n++
		}
	}
	return n
}
