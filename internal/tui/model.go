package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/conorfennell/quizflow/internal/domain"
	"github.com/conorfennell/quizflow/internal/flow"
	"github.com/conorfennell/quizflow/internal/scoring"
)

// refreshInterval is how often the screen re-reads the controller.
const refreshInterval = 200 * time.Millisecond

type refreshMsg time.Time

// Model plays the quiz in a terminal against a local controller.
type Model struct {
	ctrl        *flow.Controller
	view        flow.View
	checkoutURL string
	bell        func() error
	logger      *zap.Logger
	styles      Styles
	progress    progress.Model
	timer       progress.Model
	notice      string
	width       int
}

// New creates the terminal model. bell is called for answer feedback cues;
// its errors are logged and otherwise ignored.
func New(ctrl *flow.Controller, checkoutURL string, bell func() error, logger *zap.Logger) Model {
	m := Model{
		ctrl:        ctrl,
		checkoutURL: checkoutURL,
		bell:        bell,
		logger:      logger,
		styles:      DefaultStyles(),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		timer:       progress.New(progress.WithSolidFill("#F97316"), progress.WithoutPercentage()),
		width:       60,
	}
	m.progress.Width = m.width
	m.timer.Width = m.width
	m.refresh()
	return m
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return refresh()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = min(msg.Width-4, 80)
		m.progress.Width = m.width
		m.timer.Width = m.width
		return m, nil
	case refreshMsg:
		m.refresh()
		return m, refresh()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		switch m.view.Step {
		case domain.StepIntro:
			m.ctrl.Start()
		case domain.StepResult:
			m.ctrl.Continue()
		case domain.StepOffer:
			m.notice = "Finalize sua compra em: " + m.checkoutURL
		}
	case "o":
		if m.view.Step == domain.StepOffer {
			m.notice = "Finalize sua compra em: " + m.checkoutURL
		}
	case "h":
		m.ctrl.RevealHint()
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 {
			m.ctrl.SubmitAnswer(n - 1)
		}
	}
	m.refresh()
	return m, nil
}

// refresh re-reads the controller and plays pending cues.
func (m *Model) refresh() {
	m.view = m.ctrl.Snapshot()
	for _, cue := range m.ctrl.DrainCues() {
		if cue == flow.CueClick || m.bell == nil {
			continue
		}
		if err := m.bell(); err != nil {
			m.logger.Debug("bell failed", zap.Stringer("cue", cue), zap.Error(err))
		}
	}
}

func (m Model) View() string {
	var b strings.Builder
	v := m.view

	if v.ShowsCountdown() {
		b.WriteString(m.styles.Countdown.Render("Oferta especial termina em: " + v.CountdownClock()))
		b.WriteString("\n\n")
	}

	switch v.Step {
	case domain.StepIntro:
		m.renderIntro(&b)
	case domain.StepQuiz:
		m.renderQuestion(&b)
	case domain.StepResult:
		m.renderResult(&b)
	case domain.StepOffer:
		m.renderOffer(&b)
	}

	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}
	b.WriteString("\n" + m.styles.Muted.Render(m.helpLine()))
	return m.styles.Box.Render(b.String())
}

func (m Model) helpLine() string {
	switch m.view.Step {
	case domain.StepIntro:
		return "enter: começar • q: sair"
	case domain.StepQuiz:
		return "1-" + strconv.Itoa(len(m.view.Question.Options)) + ": responder • h: dica • q: sair"
	case domain.StepResult:
		return "enter: continuar • q: sair"
	}
	return "enter/o: comprar • q: sair"
}

func (m Model) renderIntro(b *strings.Builder) {
	b.WriteString(m.styles.Title.Render("Você sabia que exercícios mentais simples podem melhorar sua memória? 💡"))
	b.WriteString("\n\nParticipe do nosso quiz gratuito e descubra como está a sua memória! 🧠\n")
}

func (m Model) renderQuestion(b *strings.Builder) {
	v := m.view
	fmt.Fprintf(b, "Pergunta %d de %d  %s\n", v.Number(), v.Total, m.styles.Muted.Render(fmt.Sprintf("%d%%", v.ProgressLabel())))
	b.WriteString(m.progress.ViewAs(v.Progress / 100))
	fmt.Fprintf(b, "\nTempo: %ds\n", v.QuestionTimer)
	b.WriteString(m.timer.ViewAs(v.TimerPercent() / 100))
	b.WriteString("\n")
	b.WriteString(m.styles.Star.Render(strings.Repeat("★", v.Stars)))
	b.WriteString(m.styles.Muted.Render(strings.Repeat("☆", scoring.StarSlots-v.Stars)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render(v.Question.Category.Label()) + "\n")
	b.WriteString(m.styles.Prompt.Render(v.Question.Prompt) + "\n\n")
	for i, opt := range v.Question.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case v.IsCorrectOption(i):
			b.WriteString(m.styles.Correct.Render(line + " ✓"))
		case v.IsWrongPick(i):
			b.WriteString(m.styles.Wrong.Render(line + " ✗"))
		default:
			b.WriteString(m.styles.Option.Render(line))
		}
		b.WriteString("\n")
	}

	if v.TimedOut {
		b.WriteString("\n" + m.styles.Wrong.Render("⏰ Tempo esgotado!"))
		b.WriteString("\nA resposta correta era: " + v.CorrectText + "\n")
	}
	if v.HintShown {
		b.WriteString("\n" + m.styles.Hint.Render("Dica: "+v.Question.Hint) + "\n")
	} else if v.HintAvailable {
		b.WriteString("\n" + m.styles.Muted.Render("Pressione h para ver uma dica") + "\n")
	}
	if v.Celebrating {
		b.WriteString("\n🎉 🎊 🎉 🎊 🎉\n")
	}
}

func (m Model) renderResult(b *strings.Builder) {
	v := m.view
	b.WriteString(m.styles.Title.Render("Parabéns! 🏆"))
	fmt.Fprintf(b, "\n\n%s\n\nVocê acertou %d de %d perguntas!\n", v.Message, v.Score, v.Total)
}

func (m Model) renderOffer(b *strings.Builder) {
	v := m.view
	b.WriteString(m.styles.Title.Render("Treine sua mente todos os dias"))
	fmt.Fprintf(b, "\n\nVocê acertou %d de %d. %s\n", v.Score, v.Total, v.Message)
}
