package flow

import (
	"github.com/conorfennell/quizflow/internal/domain"
	"github.com/conorfennell/quizflow/internal/scoring"
)

// View is a point-in-time copy of a controller's state.
// Question fields are zero unless Step is StepQuiz.
type View struct {
	Step            domain.Step
	Question        domain.Question
	Index           int
	Total           int
	Score           int
	Stars           int
	QuestionTimer   int
	QuestionSeconds int
	Countdown       int
	Progress        float64

	Answered      bool
	Selected      int
	TimedOut      bool
	Wrong         bool
	CorrectText   string
	HintShown     bool
	HintAvailable bool
	Celebrating   bool

	Message string
}

// Number is the 1-based question number.
func (v View) Number() int { return v.Index + 1 }

// IsCorrectOption reports whether option i should be marked correct.
func (v View) IsCorrectOption(i int) bool {
	return v.Answered && i == v.Question.Correct
}

// IsWrongPick reports whether option i was picked and is wrong.
func (v View) IsWrongPick(i int) bool {
	return v.Answered && v.Selected == i && i != v.Question.Correct
}

// CountdownClock renders the promotional countdown as m:ss.
func (v View) CountdownClock() string {
	return scoring.FormatClock(v.Countdown)
}

// TimerPercent is the share of the question timer left, for progress bars.
func (v View) TimerPercent() float64 {
	if v.QuestionSeconds <= 0 {
		return 0
	}
	return float64(v.QuestionTimer) / float64(v.QuestionSeconds) * 100
}

// ProgressLabel is the rounded quiz progress.
func (v View) ProgressLabel() int {
	return scoring.Round(v.Progress)
}

// ShowsCountdown reports whether the promotional countdown is displayed.
func (v View) ShowsCountdown() bool {
	return v.Step == domain.StepIntro || v.Step == domain.StepOffer
}
