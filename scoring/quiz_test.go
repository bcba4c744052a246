package scoring

import (
	"errors"
	"testing"

	"crickarena/models"
)

func quizRef() Reference {
	return Reference{Questions: map[uint]models.QuizQuestion{
		1: {ID: 1, Question: "q1", CorrectOption: "A", Points: 10},
		2: {ID: 2, Question: "q2", CorrectOption: "B", Points: 10},
		3: {ID: 3, Question: "q3", CorrectOption: "C", Points: 20},
	}}
}

func TestQuizAllCorrect(t *testing.T) {
	payload := QuizPayload{Answers: []QuizAnswer{
		{QuestionID: 1, SelectedOption: "A"},
		{QuestionID: 2, SelectedOption: "B"},
		{QuestionID: 3, SelectedOption: "C"},
	}}

	result, err := Score(models.ModeQuiz, payload, quizRef())
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != 40 || result.MaxScore != 40 {
		t.Fatalf("expected 40/40, got %d/%d", result.Score, result.MaxScore)
	}
	if !result.Won {
		t.Fatalf("perfect score should count as a win")
	}
}

func TestQuizAllWrong(t *testing.T) {
	payload := QuizPayload{Answers: []QuizAnswer{
		{QuestionID: 1, SelectedOption: "B"},
		{QuestionID: 2, SelectedOption: "C"},
	}}

	result, err := Score(models.ModeQuiz, payload, quizRef())
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != 0 || result.MaxScore != 20 {
		t.Fatalf("expected 0/20, got %d/%d", result.Score, result.MaxScore)
	}
	if result.Won {
		t.Fatalf("zero score cannot be a win")
	}
}

func TestQuizPartialBelowWinThreshold(t *testing.T) {
	// 10 of 20 is 50%, below the 70% win line.
	payload := QuizPayload{Answers: []QuizAnswer{
		{QuestionID: 1, SelectedOption: "A"},
		{QuestionID: 2, SelectedOption: "D"},
	}}

	result, err := Score(models.ModeQuiz, payload, quizRef())
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != 10 || result.Won {
		t.Fatalf("expected 10 points and no win, got %d won=%t", result.Score, result.Won)
	}
}

func TestQuizDuplicateAnswersFirstWins(t *testing.T) {
	payload := QuizPayload{Answers: []QuizAnswer{
		{QuestionID: 1, SelectedOption: "A"},
		{QuestionID: 1, SelectedOption: "D"}, // ignored
	}}

	result, err := Score(models.ModeQuiz, payload, quizRef())
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if result.Score != 10 || result.MaxScore != 10 {
		t.Fatalf("duplicate should not double-count: got %d/%d", result.Score, result.MaxScore)
	}
}

func TestQuizUnknownQuestionRejected(t *testing.T) {
	payload := QuizPayload{Answers: []QuizAnswer{
		{QuestionID: 99, SelectedOption: "A"},
	}}

	_, err := Score(models.ModeQuiz, payload, quizRef())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuizEmptySubmissionRejected(t *testing.T) {
	_, err := Score(models.ModeQuiz, QuizPayload{}, quizRef())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuizInvalidOptionRejected(t *testing.T) {
	payload := QuizPayload{Answers: []QuizAnswer{
		{QuestionID: 1, SelectedOption: "E"},
	}}

	_, err := Score(models.ModeQuiz, payload, quizRef())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuizPayloadModeMismatchRejected(t *testing.T) {
	payload := QuizPayload{Answers: []QuizAnswer{{QuestionID: 1, SelectedOption: "A"}}}

	_, err := Score(models.ModeTeamSelection, payload, quizRef())
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error for mode mismatch, got %v", err)
	}
}
