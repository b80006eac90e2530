package domain

// Category tags the kind of mental exercise a question trains.
type Category string

const (
	Memory   Category = "memory"
	Logic    Category = "logic"
	Sequence Category = "sequence"
	Visual   Category = "visual"
)

// Categories lists every known category in display order.
var Categories = []Category{Memory, Logic, Sequence, Visual}

// Label returns the human-facing name shown above a question.
func (c Category) Label() string {
	switch c {
	case Memory:
		return "Memória"
	case Logic:
		return "Lógica"
	case Sequence:
		return "Sequência"
	case Visual:
		return "Visual"
	}
	return string(c)
}

// Question is a single multiple-choice quiz entry.
// Questions are never mutated once a bank is loaded.
type Question struct {
	ID       int      `validate:"gte=1"`
	Category Category `validate:"oneof=memory logic sequence visual"`
	Prompt   string   `validate:"required"`
	Options  []string `validate:"min=2,dive,required"`
	Correct  int      `validate:"gte=0"`
	Hint     string
}

// CorrectText returns the text of the correct option.
func (q Question) CorrectText() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

// Testimonial is a customer quote rendered as social proof.
type Testimonial struct {
	Name   string
	Age    int
	Text   string
	Avatar string
}
