package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/conorfennell/quizflow/internal/domain"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name              string
		input             string
		expectedQuestions int
		expectedPrompt    string
		expectedCategory  domain.Category
		expectedOptions   int
		expectedCorrect   int
		expectedHint      string
	}{
		{
			name:              "Simple question",
			input:             "Q: Resolva: 7 + 8 - 3 = ?\nT: logic\nO: 10\nO: 11\nO: 12\nO: 13\nA: 12",
			expectedQuestions: 1,
			expectedPrompt:    "Resolva: 7 + 8 - 3 = ?",
			expectedCategory:  domain.Logic,
			expectedOptions:   4,
			expectedCorrect:   2,
		},
		{
			name: "Question with hint",
			input: `
Q: Complete a sequência: 2, 4, 6, __, 10
T: sequence
O: 7
O: 8
A: 8
H: Pense em números pares
em ordem crescente
`,
			expectedQuestions: 1,
			expectedPrompt:    "Complete a sequência: 2, 4, 6, __, 10",
			expectedCategory:  domain.Sequence,
			expectedOptions:   2,
			expectedCorrect:   1,
			expectedHint:      "Pense em números pares\nem ordem crescente",
		},
		{
			name: "Multiline prompt",
			input: `
Q: Lembre-se:
qual foi a primeira cor?
T: memory
O: Verde
O: Azul
A: Verde
`,
			expectedQuestions: 1,
			expectedPrompt:    "Lembre-se:\nqual foi a primeira cor?",
			expectedCategory:  domain.Memory,
			expectedOptions:   2,
			expectedCorrect:   0,
		},
		{
			name: "Two questions separated by new Q",
			input: `
Q: First
T: visual
O: a
O: b
A: a
Q: Second
T: logic
O: c
O: d
A: d
`,
			expectedQuestions: 2,
		},
		{
			name: "Two questions separated by rule",
			input: `
Q: First
T: visual
O: a
O: b
A: a
---
Q: Second
T: logic
O: c
O: d
A: d
`,
			expectedQuestions: 2,
		},
		{
			name:              "Empty block is skipped",
			input:             "Q:\n---\nQ: Question\nT: logic\nO: x\nO: y\nA: x",
			expectedQuestions: 1,
			expectedPrompt:    "Question",
			expectedCategory:  domain.Logic,
			expectedOptions:   2,
			expectedCorrect:   0,
		},
		{
			name:              "No questions, just text",
			input:             "This is a file with no questions.",
			expectedQuestions: 0,
		},
		{
			name:              "Prefixes with no space",
			input:             "Q:Question\nT:Logic\nO:x\nO:y\nA:y",
			expectedQuestions: 1,
			expectedPrompt:    "Question",
			expectedCategory:  domain.Logic,
			expectedOptions:   2,
			expectedCorrect:   1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := strings.NewReader(tc.input)
			questions, err := Parse(r)
			if err != nil {
				t.Fatalf("Parse() returned an unexpected error: %v", err)
			}

			if len(questions) != tc.expectedQuestions {
				t.Fatalf("Expected %d questions, but got %d", tc.expectedQuestions, len(questions))
			}

			for i, q := range questions {
				if q.ID != i+1 {
					t.Errorf("Expected question %d to have ID %d, got %d", i, i+1, q.ID)
				}
			}

			if tc.expectedQuestions == 1 {
				q := questions[0]
				if q.Prompt != tc.expectedPrompt {
					t.Errorf("Expected Prompt to be '%s', but got '%s'", tc.expectedPrompt, q.Prompt)
				}
				if q.Category != tc.expectedCategory {
					t.Errorf("Expected Category to be '%s', but got '%s'", tc.expectedCategory, q.Category)
				}
				if len(q.Options) != tc.expectedOptions {
					t.Errorf("Expected %d options, but got %d", tc.expectedOptions, len(q.Options))
				}
				if q.Correct != tc.expectedCorrect {
					t.Errorf("Expected Correct to be %d, but got %d", tc.expectedCorrect, q.Correct)
				}
				if q.Hint != tc.expectedHint {
					t.Errorf("Expected Hint to be '%s', but got '%s'", tc.expectedHint, q.Hint)
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "Missing answer",
			input:    "Q: q\nT: logic\nO: a\nO: b",
			expected: ErrNoAnswer,
		},
		{
			name:     "Answer not an option",
			input:    "Q: q\nT: logic\nO: a\nO: b\nA: c",
			expected: ErrUnknownAnswer,
		},
		{
			name:     "Unknown category",
			input:    "Q: q\nT: trivia\nO: a\nO: b\nA: a",
			expected: ErrUnknownCategory,
		},
		{
			name:     "Empty question text",
			input:    "Q:\nT: logic\nO: a\nO: b\nA: a\n---\nQ: second\nT: logic\nO: c\nO: d\nA: c",
			expected: ErrNoPrompt,
		},
		{
			name:     "Single option",
			input:    "Q: q\nT: logic\nO: a\nA: a",
			expected: ErrTooFewOptions,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			if !errors.Is(err, tc.expected) {
				t.Fatalf("Expected error %v, got %v", tc.expected, err)
			}
			if !strings.Contains(err.Error(), "question 1") {
				t.Errorf("Expected error to name the question, got %q", err.Error())
			}
		})
	}
}
