package services

import (
	"testing"

	"crickarena/models"
)

func TestGetQuizQuestionsFiltersAndClamps(t *testing.T) {
	db := setupTestDB(t)
	seedQuestions(t, db, 5)

	// One inactive and one hard question.
	extra := []models.QuizQuestion{
		{Question: "inactive", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "A", Points: 10, IsActive: false},
		{Question: "hard", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectOption: "A", Points: 10, Difficulty: "hard", IsActive: true},
	}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("seed extra: %v", err)
	}

	svc := NewContentService(db)

	all, err := svc.GetQuizQuestions("", 20)
	if err != nil {
		t.Fatalf("get questions: %v", err)
	}
	if len(all) != 6 {
		t.Fatalf("inactive question leaked: got %d", len(all))
	}

	hard, err := svc.GetQuizQuestions("hard", 20)
	if err != nil || len(hard) != 1 {
		t.Fatalf("expected 1 hard question, got %d (%v)", len(hard), err)
	}

	clamped, err := svc.GetQuizQuestions("", 3)
	if err != nil || len(clamped) != 3 {
		t.Fatalf("expected count honored, got %d (%v)", len(clamped), err)
	}
}

func TestQuestionsByIDSkipsInactive(t *testing.T) {
	db := setupTestDB(t)
	questions := seedQuestions(t, db, 2)
	db.Model(&models.QuizQuestion{}).Where("id = ?", questions[1].ID).Update("is_active", false)

	svc := NewContentService(db)
	byID, err := svc.QuestionsByID([]uint{questions[0].ID, questions[1].ID})
	if err != nil {
		t.Fatalf("questions by id: %v", err)
	}
	if len(byID) != 1 {
		t.Fatalf("inactive question should not grade, got %d", len(byID))
	}
}

func TestSanitizeQuestionsWithholdsAnswers(t *testing.T) {
	questions := []models.QuizQuestion{
		{ID: 1, Question: "q", OptionA: "a", CorrectOption: "A", Explanation: "because", Points: 10},
	}

	sanitized := SanitizeQuestions(questions)
	if len(sanitized) != 1 || sanitized[0].Question != "q" || sanitized[0].Points != 10 {
		t.Fatalf("sanitized shape wrong: %+v", sanitized)
	}
	// SanitizedQuestion has no answer fields at all; this test documents
	// that intent against accidental field additions.
}

func TestSanitizeScenariosWithholdsAnswers(t *testing.T) {
	svc := NewContentService(setupTestDB(t))

	scenarios := SanitizeScenarios(svc.GetStrategyScenarios())
	if len(scenarios) == 0 {
		t.Fatalf("expected built-in scenarios")
	}
	for _, s := range scenarios {
		if s.CorrectOption != "" || s.Explanation != "" {
			t.Fatalf("scenario %d leaked its answer", s.ID)
		}
	}

	// Sanitizing must not mutate the reference set the scoring engine uses.
	for id, s := range svc.ScenariosByID() {
		if s.CorrectOption == "" {
			t.Fatalf("reference scenario %d lost its answer", id)
		}
	}
}
