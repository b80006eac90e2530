package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conorfennell/quizflow/internal/domain"
)

const (
	questionPrefix = "Q:"
	typePrefix     = "T:"
	optionPrefix   = "O:"
	answerPrefix   = "A:"
	hintPrefix     = "H:"
)

var (
	ErrNoPrompt        = errors.New("missing question text")
	ErrNoAnswer        = errors.New("missing answer")
	ErrUnknownAnswer   = errors.New("answer does not match any option")
	ErrUnknownCategory = errors.New("unknown category")
	ErrTooFewOptions   = errors.New("at least two options required")
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingHint
)

// draft accumulates one question block before it is checked.
type draft struct {
	prompt   string
	category string
	options  []string
	answer   string
	hasAns   bool
	hint     string
}

// empty reports whether the block carries nothing besides its prompt.
func (d draft) empty() bool {
	return d.category == "" && len(d.options) == 0 && !d.hasAns && d.hint == ""
}

// ParseFile reads a question bank from the given path.
func ParseFile(path string) ([]domain.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads a question bank from an io.Reader.
//
// Blocks start with "Q:" and end at "---", the next "Q:" or EOF. Question
// and hint text may continue over several lines; "T:", "O:" and "A:" are
// single-line. IDs are assigned in file order starting at 1.
func Parse(r io.Reader) ([]domain.Question, error) {
	scanner := bufio.NewScanner(r)
	var questions []domain.Question
	var current draft
	var currentBlock []string
	currentState := seeking

	flushBlock := func() {
		if len(currentBlock) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(currentBlock, "\n"))
		switch currentState {
		case readingQuestion:
			current.prompt = content
		case readingHint:
			current.hint = content
		}
		currentBlock = nil
	}

	finishQuestion := func() error {
		flushBlock()
		defer func() {
			current = draft{}
			currentState = seeking
		}()
		if current.prompt == "" {
			if current.empty() {
				return nil
			}
			return fmt.Errorf("question %d: %w", len(questions)+1, ErrNoPrompt)
		}
		q, err := current.build(len(questions) + 1)
		if err != nil {
			return fmt.Errorf("question %d: %w", len(questions)+1, err)
		}
		questions = append(questions, q)
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		if line == "---" {
			if err := finishQuestion(); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, questionPrefix):
			if currentState != seeking { // A new question always starts a new block
				if err := finishQuestion(); err != nil {
					return nil, err
				}
			}
			currentState = readingQuestion
			currentBlock = append(currentBlock, value(line, questionPrefix))
		case currentState == seeking:
			// Text outside a question block is ignored.
		case strings.HasPrefix(line, typePrefix):
			flushBlock()
			current.category = value(line, typePrefix)
		case strings.HasPrefix(line, optionPrefix):
			flushBlock()
			current.options = append(current.options, value(line, optionPrefix))
		case strings.HasPrefix(line, answerPrefix):
			flushBlock()
			current.answer = value(line, answerPrefix)
			current.hasAns = true
		case strings.HasPrefix(line, hintPrefix):
			flushBlock()
			currentState = readingHint
			currentBlock = append(currentBlock, value(line, hintPrefix))
		default:
			if len(currentBlock) > 0 {
				currentBlock = append(currentBlock, line)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := finishQuestion(); err != nil { // Finish the very last question in the file
		return nil, err
	}

	return questions, nil
}

func (d draft) build(id int) (domain.Question, error) {
	category := domain.Category(strings.ToLower(d.category))
	known := false
	for _, c := range domain.Categories {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		return domain.Question{}, fmt.Errorf("%w: %q", ErrUnknownCategory, d.category)
	}
	if len(d.options) < 2 {
		return domain.Question{}, ErrTooFewOptions
	}
	if !d.hasAns {
		return domain.Question{}, ErrNoAnswer
	}

	correct := -1
	for i, o := range d.options {
		if o == d.answer {
			correct = i
			break
		}
	}
	if correct < 0 {
		return domain.Question{}, fmt.Errorf("%w: %q", ErrUnknownAnswer, d.answer)
	}

	return domain.Question{
		ID:       id,
		Category: category,
		Prompt:   d.prompt,
		Options:  d.options,
		Correct:  correct,
		Hint:     d.hint,
	}, nil
}

func value(line, prefix string) string {
	return strings.TrimSpace(line[len(prefix):])
}
