package bank

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/conorfennell/quizflow/internal/domain"
	"github.com/conorfennell/quizflow/internal/parser"
)

//go:embed default.md
var defaultBank []byte

var ErrEmpty = errors.New("question bank is empty")

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateCorrectIndex, domain.Question{})
}

func validateCorrectIndex(sl validator.StructLevel) {
	q := sl.Current().Interface().(domain.Question)
	if q.Correct >= len(q.Options) {
		sl.ReportError(q.Correct, "Correct", "Correct", "correct_in_options", "")
	}
}

// Default returns the built-in eight question bank.
func Default() ([]domain.Question, error) {
	questions, err := parser.Parse(bytes.NewReader(defaultBank))
	if err != nil {
		return nil, fmt.Errorf("failed to parse default bank: %w", err)
	}
	return questions, Validate(questions)
}

// Load reads a bank from path, or returns the default bank when path is empty.
func Load(path string) ([]domain.Question, error) {
	if path == "" {
		return Default()
	}
	questions, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bank %s: %w", path, err)
	}
	if err := Validate(questions); err != nil {
		return nil, fmt.Errorf("invalid bank %s: %w", path, err)
	}
	return questions, nil
}

// Validate checks every question in the bank.
func Validate(questions []domain.Question) error {
	if len(questions) == 0 {
		return ErrEmpty
	}
	for _, q := range questions {
		if err := validate.Struct(q); err != nil {
			return fmt.Errorf("question %d: %w", q.ID, err)
		}
	}
	return nil
}
