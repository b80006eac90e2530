package flow

import (
	"sync"
	"time"

	"github.com/conorfennell/quizflow/internal/domain"
	"github.com/conorfennell/quizflow/internal/scoring"
)

// TimedOut is submitted in place of an option index when the question timer expires.
const TimedOut = -1

// Options tunes the timing of a Controller.
type Options struct {
	QuestionSeconds  int
	CountdownSeconds int
	Tick             time.Duration
	RevealDelay      time.Duration
	CelebrateDelay   time.Duration
	Scheduler        Scheduler
}

// DefaultOptions returns the landing page timings: 30 s per question, a five
// minute promotional countdown, a two second reveal and a three second
// celebration before the result.
func DefaultOptions() Options {
	return Options{
		QuestionSeconds:  30,
		CountdownSeconds: 300,
		Tick:             time.Second,
		RevealDelay:      2 * time.Second,
		CelebrateDelay:   3 * time.Second,
		Scheduler:        WallClock,
	}
}

type state interface {
	step() domain.Step
}

type introState struct{}

type quizState struct {
	index       int
	timer       int
	score       int
	answered    bool
	selected    int
	hintShown   bool
	celebrating bool
}

type resultState struct {
	score int
}

type offerState struct {
	score int
}

func (*introState) step() domain.Step  { return domain.StepIntro }
func (*quizState) step() domain.Step   { return domain.StepQuiz }
func (*resultState) step() domain.Step { return domain.StepResult }
func (*offerState) step() domain.Step  { return domain.StepOffer }

type taskKind int

const (
	countdownTask taskKind = iota
	questionTask
	revealTask
	celebrateTask
)

type scheduled struct {
	id   uint64
	task Task
}

// Controller drives one visitor through intro, quiz, result and offer.
//
// All operations are serialized by a mutex. Every state change bumps an
// epoch and stops the tasks owned by the previous state; a task that fires
// late sees a stale epoch and does nothing.
type Controller struct {
	mu        sync.Mutex
	questions []domain.Question
	opts      Options
	state     state
	countdown int
	epoch     uint64
	seq       uint64
	tasks     map[taskKind]scheduled
	cues      []Cue
	closed    bool
}

// New creates a controller at the intro step with the promotional countdown
// running. questions must be non-empty.
func New(questions []domain.Question, opts Options) *Controller {
	defaults := DefaultOptions()
	if opts.QuestionSeconds <= 0 {
		opts.QuestionSeconds = defaults.QuestionSeconds
	}
	if opts.CountdownSeconds < 0 {
		opts.CountdownSeconds = 0
	}
	if opts.Tick <= 0 {
		opts.Tick = defaults.Tick
	}
	if opts.Scheduler == nil {
		opts.Scheduler = defaults.Scheduler
	}

	c := &Controller{
		questions: questions,
		opts:      opts,
		countdown: opts.CountdownSeconds,
		tasks:     make(map[taskKind]scheduled),
	}
	c.enter(&introState{})
	return c
}

// Start moves from intro to the first question.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.state.(*introState); !ok || c.closed {
		return false
	}
	c.emit(CueClick)
	c.enter(&quizState{index: 0, timer: c.opts.QuestionSeconds, score: 0})
	return true
}

// SubmitAnswer records choice for the current question. choice is an option
// index or TimedOut. It is ignored outside the quiz, for an already answered
// question and for an index that is not an option.
func (c *Controller) SubmitAnswer(choice int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	return c.submit(choice)
}

// RevealHint shows the hint after a wrong explicit pick.
func (c *Controller) RevealHint() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, ok := c.state.(*quizState)
	if !ok || c.closed || !q.answered || q.hintShown {
		return false
	}
	question := c.questions[q.index]
	if q.selected == TimedOut || q.selected == question.Correct || question.Hint == "" {
		return false
	}
	q.hintShown = true
	return true
}

// Continue moves from the result to the offer.
func (c *Controller) Continue() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.state.(*resultState)
	if !ok || c.closed {
		return false
	}
	c.emit(CueClick)
	c.enter(&offerState{score: r.score})
	return true
}

// Close cancels every pending task. Later operations are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	c.cancelTasks()
}

// DrainCues returns the cues emitted since the last drain.
func (c *Controller) DrainCues() []Cue {
	c.mu.Lock()
	defer c.mu.Unlock()

	cues := c.cues
	c.cues = nil
	return cues
}

// Step returns the current step.
func (c *Controller) Step() domain.Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.step()
}

func (c *Controller) submit(choice int) bool {
	q, ok := c.state.(*quizState)
	if !ok || q.answered || q.celebrating {
		return false
	}
	question := c.questions[q.index]
	if choice != TimedOut && (choice < 0 || choice >= len(question.Options)) {
		return false
	}

	c.cancelTasks()
	q.answered = true
	q.selected = choice

	c.emit(CueClick)
	switch {
	case choice == question.Correct:
		q.score++
		c.emit(CueCorrect)
	case choice != TimedOut:
		c.emit(CueWrong)
	}

	c.schedule(revealTask, c.opts.RevealDelay, c.advance)
	return true
}

// advance runs after the reveal delay.
func (c *Controller) advance() {
	q, ok := c.state.(*quizState)
	if !ok || !q.answered || q.celebrating {
		return
	}

	if q.index < len(c.questions)-1 {
		c.enter(&quizState{index: q.index + 1, timer: c.opts.QuestionSeconds, score: q.score})
		return
	}

	c.cancelTasks()
	q.celebrating = true
	c.emit(CueChampion)
	c.schedule(celebrateTask, c.opts.CelebrateDelay, c.finish)
}

func (c *Controller) finish() {
	q, ok := c.state.(*quizState)
	if !ok || !q.celebrating {
		return
	}
	c.enter(&resultState{score: q.score})
}

func (c *Controller) questionTick() {
	q, ok := c.state.(*quizState)
	if !ok || q.answered {
		return
	}
	q.timer--
	if q.timer <= 0 {
		q.timer = 0
		c.submit(TimedOut)
		return
	}
	c.schedule(questionTask, c.opts.Tick, c.questionTick)
}

func (c *Controller) countdownTick() {
	switch c.state.(type) {
	case *introState, *offerState:
	default:
		return
	}
	if c.countdown > 0 {
		c.countdown--
	}
	if c.countdown > 0 {
		c.schedule(countdownTask, c.opts.Tick, c.countdownTick)
	}
}

// enter replaces the state and starts the tasks the new state owns.
func (c *Controller) enter(next state) {
	c.cancelTasks()
	c.state = next

	switch s := next.(type) {
	case *introState, *offerState:
		if c.countdown > 0 {
			c.schedule(countdownTask, c.opts.Tick, c.countdownTick)
		}
	case *quizState:
		if !s.answered {
			c.schedule(questionTask, c.opts.Tick, c.questionTick)
		}
	}
}

func (c *Controller) cancelTasks() {
	c.epoch++
	for kind, t := range c.tasks {
		t.task.Stop()
		delete(c.tasks, kind)
	}
}

func (c *Controller) schedule(kind taskKind, d time.Duration, fn func()) {
	if c.closed {
		return
	}
	if prev, ok := c.tasks[kind]; ok {
		prev.task.Stop()
	}
	c.seq++
	epoch, id := c.epoch, c.seq
	task := c.opts.Scheduler.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.closed || c.epoch != epoch {
			return
		}
		// A replaced task of the same kind may still fire on a real timer.
		if cur, ok := c.tasks[kind]; !ok || cur.id != id {
			return
		}
		delete(c.tasks, kind)
		fn()
	})
	c.tasks[kind] = scheduled{id: id, task: task}
}

func (c *Controller) emit(cue Cue) {
	if len(c.cues) >= maxPendingCues {
		c.cues = c.cues[1:]
	}
	c.cues = append(c.cues, cue)
}

// Snapshot returns a copy of the state for rendering.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Step:            c.state.step(),
		Total:           len(c.questions),
		QuestionSeconds: c.opts.QuestionSeconds,
		Countdown:       c.countdown,
		Selected:        TimedOut,
	}

	switch s := c.state.(type) {
	case *quizState:
		question := c.questions[s.index]
		v.Question = question
		v.Index = s.index
		v.Score = s.score
		v.QuestionTimer = s.timer
		v.Answered = s.answered
		v.Celebrating = s.celebrating
		v.HintShown = s.hintShown
		v.Progress = scoring.Progress(s.index, len(c.questions))
		if s.answered {
			v.Selected = s.selected
			v.TimedOut = s.selected == TimedOut
			v.Wrong = !v.TimedOut && s.selected != question.Correct
			v.CorrectText = question.CorrectText()
			v.HintAvailable = v.Wrong && !s.hintShown && question.Hint != ""
		}
	case *resultState:
		v.Score = s.score
		v.Message = scoring.Message(s.score, len(c.questions))
	case *offerState:
		v.Score = s.score
		v.Message = scoring.Message(s.score, len(c.questions))
	}
	v.Stars = scoring.Stars(v.Score)
	return v
}
