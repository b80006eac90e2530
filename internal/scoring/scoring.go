package scoring

import (
	"fmt"
	"math"
)

// StarSlots is the number of stars shown during the quiz.
const StarSlots = 3

// Tier is a score band and the message shown for it.
type Tier struct {
	MinPercent float64
	Message    string
}

// Tiers are checked in order; the first whose MinPercent is reached wins.
var Tiers = []Tier{
	{MinPercent: 80, Message: "Excelente! Sua mente está muito afiada! 🌟"},
	{MinPercent: 60, Message: "Muito bom! Você está no caminho certo! 🎯"},
	{MinPercent: 40, Message: "Bom trabalho! Com prática você melhora! 💪"},
	{MinPercent: 0, Message: "Ótimo começo! A prática leva à perfeição! 🚀"},
}

// Percent returns score as a percentage of total.
func Percent(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) / float64(total) * 100
}

// Message returns the encouragement message for a final score.
func Message(score, total int) string {
	p := Percent(score, total)
	for _, t := range Tiers {
		if p >= t.MinPercent {
			return t.Message
		}
	}
	return Tiers[len(Tiers)-1].Message
}

// Stars returns how many of the StarSlots are lit for a running score.
func Stars(score int) int {
	return max(0, min(score, StarSlots))
}

// Progress is the percentage of the quiz reached when showing question index.
func Progress(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index+1) / float64(total) * 100
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Round rounds a percentage for display.
func Round(p float64) int {
	return int(math.Round(p))
}
