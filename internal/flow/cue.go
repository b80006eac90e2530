package flow

import "fmt"

// Cue is a feedback signal for the client, usually rendered as a short sound.
// Cues are best-effort: dropping or failing to play one never affects state.
type Cue int

const (
	CueClick Cue = iota
	CueCorrect
	CueWrong
	CueChampion
)

// maxPendingCues bounds the queue between drains; the oldest cue is dropped.
const maxPendingCues = 16

func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	case CueChampion:
		return "champion"
	}
	return "unknown"
}

// MarshalText lets cues encode as their names.
func (c Cue) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cue) UnmarshalText(b []byte) error {
	for _, known := range []Cue{CueClick, CueCorrect, CueWrong, CueChampion} {
		if known.String() == string(b) {
			*c = known
			return nil
		}
	}
	return fmt.Errorf("unknown cue %q", b)
}
