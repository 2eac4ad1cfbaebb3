package tui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Amruth-empire/crop-prediction/internal/usecase"
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	submitYield          *usecase.SubmitYield
	submitRecommendation *usecase.SubmitRecommendation
	loadOptions          *usecase.LoadOptions

	active         tab
	yield          yieldTab
	recommendation recommendationTab

	spinner spinner.Model
	width   int

	optionsNote string
	toast       string
}

func Run(deps Deps) error {
	m := newModel(context.Background(), deps)
	defer m.shutdown()

	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(parent context.Context, deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	ctx, cancel := context.WithCancel(parent)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := model{
		theme:          DefaultTheme(),
		deps:           deps,
		log:            log,
		ctx:            ctx,
		cancel:         cancel,
		active:         tabYield,
		yield:          newYieldTab(),
		recommendation: newRecommendationTab(),
		spinner:        sp,
	}

	if deps.Predictor != nil {
		m.submitYield = usecase.NewSubmitYield(deps.Predictor, usecase.WithLogger(log))
	}
	if deps.Recommender != nil {
		m.submitRecommendation = usecase.NewSubmitRecommendation(deps.Recommender, usecase.WithLogger(log))
	}
	if deps.Options != nil {
		m.loadOptions = usecase.NewLoadOptions(deps.Options, usecase.WithLogger(log))
	}

	if p := deps.Preset; p != nil {
		if p.Yield != nil {
			m.yield.fill(*p.Yield)
		}
		if p.Recommendation != nil {
			m.recommendation.fill(*p.Recommendation)
		}
		log.Info("tui.preset_applied", "name", p.Name)
	}

	return m
}

// shutdown cancels in-flight requests; their late settles are discarded.
func (m *model) shutdown() {
	m.cancel()
	m.yield.sub.Close()
	m.recommendation.sub.Close()
}

func (m model) busy() bool {
	return m.yield.sub.Busy() || m.recommendation.sub.Busy()
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.loadOptions != nil {
		cmds = append(cmds, cmdLoadOptions(m.ctx, m.loadOptions))
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.toast = ""
		switch msg.String() {
		case "ctrl+c", "esc":
			m.shutdown()
			return m, tea.Quit
		case "f1":
			m.active = tabYield
			return m, nil
		case "f2":
			m.active = tabRecommendation
			return m, nil
		case "ctrl+t":
			if m.active == tabYield {
				m.active = tabRecommendation
			} else {
				m.active = tabYield
			}
			return m, nil
		}
		return m.updateActive(msg)

	case yieldSettledMsg:
		if m.yield.sub.Settle(msg.tok, msg.out) {
			m.log.Debug("tui.yield.settled", "ok", msg.out.OK())
		} else {
			m.log.Debug("tui.yield.stale_settle_dropped", "token", uint64(msg.tok))
		}
		return m, nil

	case recommendationSettledMsg:
		if m.recommendation.sub.Settle(msg.tok, msg.out) {
			m.log.Debug("tui.recommendation.settled", "ok", msg.out.OK())
		} else {
			m.log.Debug("tui.recommendation.stale_settle_dropped", "token", uint64(msg.tok))
		}
		return m, nil

	case optionsLoadedMsg:
		if msg.err != nil {
			m.optionsNote = "Suggestions unavailable: " + userMessage(msg.err)
			return m, nil
		}
		m.yield.panel.setSuggestions("state", msg.opts.States)
		m.yield.panel.setSuggestions("district", msg.opts.Districts)
		m.yield.panel.setSuggestions("crop", msg.opts.Crops)
		m.optionsNote = ""
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateActive(msg)
}

func (m model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submit bool

	switch m.active {
	case tabYield:
		m.yield.panel, cmd, submit = m.yield.panel.update(msg)
		if submit {
			return m.startYield()
		}
	case tabRecommendation:
		m.recommendation.panel, cmd, submit = m.recommendation.panel.update(msg)
		if submit {
			return m.startRecommendation()
		}
	}
	return m, cmd
}

func (m model) startYield() (tea.Model, tea.Cmd) {
	if m.submitYield == nil {
		m.toast = "Yield service not configured"
		return m, nil
	}
	tok, form, ok := m.yield.begin()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(cmdSubmitYield(m.ctx, m.submitYield, tok, form), m.spinner.Tick)
}

func (m model) startRecommendation() (tea.Model, tea.Cmd) {
	if m.submitRecommendation == nil {
		m.toast = "Recommendation service not configured"
		return m, nil
	}
	tok, form, ok := m.recommendation.begin()
	if !ok {
		return m, nil
	}
	return m, tea.Batch(cmdSubmitRecommendation(m.ctx, m.submitRecommendation, tok, form), m.spinner.Tick)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	th := m.theme

	header := th.Title.Render(appTitle) + "\n" + th.Subtitle.Render(appSubtitle) + "\n"

	var tabs []string
	for _, t := range []tab{tabYield, tabRecommendation} {
		if t == m.active {
			tabs = append(tabs, th.ActiveTab.Render(t.title()))
		} else {
			tabs = append(tabs, th.Tab.Render(t.title()))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.active {
	case tabRecommendation:
		body = m.recommendationView()
	default:
		body = m.yieldView()
	}

	var footer strings.Builder
	footer.WriteString(th.Help.Render("tab/↑↓ move • ←/→ season • enter submit • F1/F2 or ctrl+t switch tab • esc quit"))
	if m.deps.ServiceURL != "" {
		footer.WriteString("\n")
		footer.WriteString(th.Help.Render("Service: " + m.deps.ServiceURL))
	}
	if m.optionsNote != "" {
		footer.WriteString("\n")
		footer.WriteString(th.Help.Render(m.optionsNote))
	}
	if m.toast != "" {
		footer.WriteString("\n")
		footer.WriteString(th.Warn.Render(m.toast))
	}

	return wrap.Render(header + "\n" + tabBar + "\n\n" + th.Card.Render(body) + "\n" + footer.String())
}

func (m model) yieldView() string {
	th := m.theme
	sub := &m.yield.sub

	button := yieldButton
	if sub.Busy() {
		button = m.spinner.View() + " " + yieldBusy
	}

	var b strings.Builder
	b.WriteString(th.Title.Render(yieldHeading))
	b.WriteString("\n\n")
	b.WriteString(m.yield.panel.view(th, button))

	if msg := sub.Err(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderFailure(th, msg, m.width))
	}
	if r, ok := sub.Result(); ok {
		b.WriteString("\n\n")
		b.WriteString(renderYieldResult(th, r))
	}
	return b.String()
}

func (m model) recommendationView() string {
	th := m.theme
	sub := &m.recommendation.sub

	button := recommendationButton
	if sub.Busy() {
		button = m.spinner.View() + " " + recommendationBusy
	}

	var b strings.Builder
	b.WriteString(th.Title.Render(recommendationHeading))
	b.WriteString("\n\n")
	b.WriteString(m.recommendation.panel.view(th, button))

	if msg := sub.Err(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(renderFailure(th, msg, m.width))
	}
	if r, ok := sub.Result(); ok {
		b.WriteString("\n\n")
		b.WriteString(renderRecommendationResult(th, r))
	}
	return b.String()
}
