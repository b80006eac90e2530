package bank

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/conorfennell/quizflow/internal/domain"
)

// Normalize renders a question into a canonical string.
// It trims whitespace and normalizes line endings for each field before
// joining them. Case is kept, so a spelling fix yields a new version.
func Normalize(q domain.Question) string {
	normalizePart := func(part string) string {
		p := strings.TrimSpace(part)
		p = strings.ReplaceAll(p, "\r\n", "\n")
		return p
	}

	parts := []string{
		normalizePart(string(q.Category)),
		normalizePart(q.Prompt),
	}
	for _, o := range q.Options {
		parts = append(parts, normalizePart(o))
	}
	parts = append(parts, strconv.Itoa(q.Correct), normalizePart(q.Hint))

	// Newline separation keeps adjacent fields from running together.
	return strings.Join(parts, "\n")
}

// Fingerprint hashes the normalized bank and returns a short hex version tag.
func Fingerprint(questions []domain.Question) string {
	h := sha256.New()
	for _, q := range questions {
		h.Write([]byte(Normalize(q)))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
