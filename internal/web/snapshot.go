package web

import "github.com/conorfennell/quizflow/internal/flow"

// snapshot is the JSON form of a flow.View.
type snapshot struct {
	Step        string       `json:"step"`
	Countdown   int          `json:"countdown"`
	Score       int          `json:"score"`
	Total       int          `json:"total"`
	Stars       int          `json:"stars"`
	Question    *questionDTO `json:"question,omitempty"`
	Celebrating bool         `json:"celebrating,omitempty"`
	Message     string       `json:"message,omitempty"`
	Cues        []flow.Cue   `json:"cues"`
}

type questionDTO struct {
	Number        int      `json:"number"`
	Category      string   `json:"category"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	Timer         int      `json:"timer"`
	Answered      bool     `json:"answered"`
	Selected      *int     `json:"selected,omitempty"`
	TimedOut      bool     `json:"timed_out,omitempty"`
	Correct       *int     `json:"correct,omitempty"`
	Hint          string   `json:"hint,omitempty"`
	HintAvailable bool     `json:"hint_available,omitempty"`
}

func newSnapshot(v flow.View, cues []flow.Cue) snapshot {
	s := snapshot{
		Step:        v.Step.String(),
		Countdown:   v.Countdown,
		Score:       v.Score,
		Total:       v.Total,
		Stars:       v.Stars,
		Celebrating: v.Celebrating,
		Message:     v.Message,
		Cues:        cues,
	}
	if s.Cues == nil {
		s.Cues = []flow.Cue{}
	}
	if v.Question.Prompt == "" {
		return s
	}

	q := &questionDTO{
		Number:        v.Number(),
		Category:      string(v.Question.Category),
		Prompt:        v.Question.Prompt,
		Options:       v.Question.Options,
		Timer:         v.QuestionTimer,
		Answered:      v.Answered,
		TimedOut:      v.TimedOut,
		HintAvailable: v.HintAvailable,
	}
	// The correct answer is only revealed once the question is answered.
	if v.Answered {
		correct := v.Question.Correct
		q.Correct = &correct
		if !v.TimedOut {
			selected := v.Selected
			q.Selected = &selected
		}
	}
	if v.HintShown {
		q.Hint = v.Question.Hint
	}
	s.Question = q
	return s
}
