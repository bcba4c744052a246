// scoring/quiz.go - Quiz mode ruleset
package scoring

import (
	"crickarena/models"
)

// QuizAnswer is one submitted answer.
type QuizAnswer struct {
	QuestionID       uint   `json:"question_id"`
	SelectedOption   string `json:"selected_option"` // A-D
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// QuizPayload is a full quiz submission.
type QuizPayload struct {
	Answers []QuizAnswer `json:"answers"`
}

func (QuizPayload) Mode() models.GameMode { return models.ModeQuiz }

// GradedAnswer is the per-question grading detail stored on the session.
type GradedAnswer struct {
	QuestionID       uint   `json:"question_id"`
	SelectedOption   string `json:"selected_option"`
	CorrectOption    string `json:"correct_option"`
	IsCorrect        bool   `json:"is_correct"`
	PointsEarned     int    `json:"points_earned"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// scoreQuiz awards each question's point value for a correct option, zero
// otherwise. MaxScore is the sum of points over the submitted set. A
// duplicate question id counts once (first occurrence wins); an id missing
// from the reference set rejects the whole submission rather than silently
// dropping points.
func scoreQuiz(p QuizPayload, ref Reference) (Result, error) {
	if len(p.Answers) == 0 {
		return Result{}, models.Invalid("no answers submitted")
	}

	seen := make(map[uint]bool, len(p.Answers))
	graded := make([]GradedAnswer, 0, len(p.Answers))
	score, maxScore := 0, 0

	for _, a := range p.Answers {
		if !validOption(a.SelectedOption) {
			return Result{}, models.Invalid("invalid option %q for question %d", a.SelectedOption, a.QuestionID)
		}
		if seen[a.QuestionID] {
			continue
		}
		seen[a.QuestionID] = true

		q, ok := ref.Questions[a.QuestionID]
		if !ok {
			return Result{}, models.Invalid("unknown question id %d", a.QuestionID)
		}

		correct := q.CorrectOption == a.SelectedOption
		pts := 0
		if correct {
			pts = q.Points
		}
		score += pts
		maxScore += q.Points
		graded = append(graded, GradedAnswer{
			QuestionID:       a.QuestionID,
			SelectedOption:   a.SelectedOption,
			CorrectOption:    q.CorrectOption,
			IsCorrect:        correct,
			PointsEarned:     pts,
			TimeTakenSeconds: a.TimeTakenSeconds,
		})
	}

	return Result{Score: score, MaxScore: maxScore, Won: Won(score, maxScore), Detail: graded}, nil
}

func validOption(opt string) bool {
	return opt == "A" || opt == "B" || opt == "C" || opt == "D"
}
