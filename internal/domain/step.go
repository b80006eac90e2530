package domain

// Step is the top-level phase of the page.
type Step int

const (
	StepIntro Step = iota
	StepQuiz
	StepResult
	StepOffer
)

func (s Step) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepQuiz:
		return "quiz"
	case StepResult:
		return "result"
	case StepOffer:
		return "offer"
	}
	return "unknown"
}
