//go:build cucumber

package router_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/saulo-duarte/coniugo/internal/config"
	"github.com/saulo-duarte/coniugo/internal/quiz"
)

// TestQuizScenarios runs the quiz feature scenarios against the full router.
func TestQuizScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "features", "quiz.feature")
	suite := godog.TestSuite{
		Name: "quiz",
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			initializeQuizScenario(t, ctx)
		},
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

type quizScenarioState struct {
	t        *testing.T
	handler  http.Handler
	response *httptest.ResponseRecorder
	state    quiz.State
}

func initializeQuizScenario(t *testing.T, ctx *godog.ScenarioContext) {
	s := &quizScenarioState{t: t}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s.handler = newTestRouter(t, config.Config{})
		s.response = nil
		s.state = quiz.EmptyState()
		return ctx, nil
	})

	ctx.Step(`^I open the quiz$`, s.iOpenTheQuiz)
	ctx.Step(`^I request "([^"]+)"$`, s.iRequest)
	ctx.Step(`^I answer "([^"]*)" to a question expecting "([^"]*)"$`, s.iAnswerExpecting)
	ctx.Step(`^I answer (\d+) questions$`, s.iAnswerQuestions)
	ctx.Step(`^the response status is (\d+)$`, s.theResponseStatusIs)
	ctx.Step(`^the progress shows "([^"]+)"$`, s.theProgressShows)
	ctx.Step(`^the page has an answer form$`, s.thePageHasAnAnswerForm)
	ctx.Step(`^the page has no answer form$`, s.thePageHasNoAnswerForm)
	ctx.Step(`^the state count is (\d+)$`, s.theStateCountIs)
	ctx.Step(`^history entry (\d+) is correct$`, s.historyEntryIsCorrect)
	ctx.Step(`^history entry (\d+) is wrong with correct answer "([^"]*)"$`, s.historyEntryIsWrong)
}

func (s *quizScenarioState) iOpenTheQuiz() error {
	return s.iRequest("/")
}

func (s *quizScenarioState) iRequest(path string) error {
	s.response = do(s.t, s.handler, http.MethodGet, path, nil)
	return nil
}

func (s *quizScenarioState) iAnswerExpecting(userAnswer, expected string) error {
	if s.response == nil {
		return fmt.Errorf("no page loaded")
	}
	fields := formFields(s.response.Body.String())
	if fields.Get("state") == "" {
		return fmt.Errorf("page has no state field")
	}
	fields.Set("user_answer", userAnswer)
	fields.Set("q_answer", expected)

	s.response = do(s.t, s.handler, http.MethodPost, "/", fields)
	s.state = quiz.NewCodec().Decode(formFields(s.response.Body.String()).Get("state"))
	return nil
}

func (s *quizScenarioState) iAnswerQuestions(n int) error {
	for i := 0; i < n; i++ {
		fields := formFields(s.response.Body.String())
		if err := s.iAnswerExpecting("x", fields.Get("q_answer")); err != nil {
			return fmt.Errorf("answer %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *quizScenarioState) theResponseStatusIs(expected int) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if s.response.Code != expected {
		return fmt.Errorf("expected status %d, got %d", expected, s.response.Code)
	}
	return nil
}

func (s *quizScenarioState) theProgressShows(progress string) error {
	want := `<div class="progress">` + progress + `</div>`
	if !strings.Contains(s.response.Body.String(), want) {
		return fmt.Errorf("expected progress %q", progress)
	}
	return nil
}

func (s *quizScenarioState) thePageHasAnAnswerForm() error {
	if !strings.Contains(s.response.Body.String(), "<form") {
		return fmt.Errorf("expected an answer form")
	}
	return nil
}

func (s *quizScenarioState) thePageHasNoAnswerForm() error {
	if strings.Contains(s.response.Body.String(), "<form") {
		return fmt.Errorf("expected no answer form")
	}
	return nil
}

func (s *quizScenarioState) theStateCountIs(n int) error {
	if s.state.Count != n {
		return fmt.Errorf("expected count %d, got %d", n, s.state.Count)
	}
	return nil
}

func (s *quizScenarioState) entry(n int) (quiz.HistoryEntry, error) {
	if n < 1 || n > len(s.state.History) {
		return quiz.HistoryEntry{}, fmt.Errorf("history has %d entries, no entry %d", len(s.state.History), n)
	}
	return s.state.History[n-1], nil
}

func (s *quizScenarioState) historyEntryIsCorrect(n int) error {
	e, err := s.entry(n)
	if err != nil {
		return err
	}
	if !e.OK {
		return fmt.Errorf("entry %d graded wrong: %+v", n, e)
	}
	return nil
}

func (s *quizScenarioState) historyEntryIsWrong(n int, correct string) error {
	e, err := s.entry(n)
	if err != nil {
		return err
	}
	if e.OK || e.Correct != correct {
		return fmt.Errorf("entry %d = %+v, want wrong with correct %q", n, e, correct)
	}
	return nil
}
