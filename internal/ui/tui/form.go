package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldChoice
)

type fieldSpec struct {
	key   string
	label string
	hint  string
	kind  fieldKind
}

// formPanel is a vertical list of inputs followed by a submit button.
// focus == len(specs) selects the button.
type formPanel struct {
	specs  []fieldSpec
	inputs []textinput.Model
	focus  int
	issues map[string]string
	// suggest mirrors the suggestions handed to each input.
	suggest map[int][]string
}

func newFormPanel(specs []fieldSpec) formPanel {
	inputs := make([]textinput.Model, len(specs))
	for i, s := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = s.hint
		ti.CharLimit = 64
		ti.Width = 36
		ti.ShowSuggestions = s.kind == fieldText
		inputs[i] = ti
	}

	p := formPanel{
		specs:   specs,
		inputs:  inputs,
		issues:  map[string]string{},
		suggest: map[int][]string{},
	}
	p.setFocus(0)
	return p
}

func (p *formPanel) setFocus(i int) {
	n := len(p.specs) + 1
	p.focus = ((i % n) + n) % n
	for j := range p.inputs {
		if j == p.focus {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
}

func (p formPanel) onButton() bool { return p.focus == len(p.specs) }

func (p formPanel) value(i int) string { return p.inputs[i].Value() }

func (p *formPanel) setValue(i int, v string) {
	p.inputs[i].SetValue(v)
	p.inputs[i].CursorEnd()
}

func (p *formPanel) setSuggestions(key string, values []string) {
	for i, s := range p.specs {
		if s.key == key && s.kind == fieldText {
			p.inputs[i].SetSuggestions(values)
			p.suggest[i] = values
		}
	}
}

// setIssues records blocking problems and moves focus to the first one.
func (p *formPanel) setIssues(issues []domain.FieldIssue) {
	p.issues = map[string]string{}
	for _, is := range issues {
		p.issues[is.Field] = is.Message
	}
	if len(issues) == 0 {
		return
	}
	for i, s := range p.specs {
		if s.key == issues[0].Field {
			p.setFocus(i)
			return
		}
	}
}

// completion returns the first suggestion extending the focused input's text.
func (p formPanel) completion() (string, bool) {
	if p.onButton() || p.specs[p.focus].kind != fieldText {
		return "", false
	}
	cur := p.value(p.focus)
	if cur == "" {
		return "", false
	}
	lc := strings.ToLower(cur)
	for _, s := range p.suggest[p.focus] {
		if len(s) > len(cur) && strings.HasPrefix(strings.ToLower(s), lc) {
			return s, true
		}
	}
	return "", false
}

// update applies a message to the panel. submit reports an enter press.
func (p formPanel) update(msg tea.Msg) (formPanel, tea.Cmd, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.onButton() {
			return p, nil, false
		}
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return p, cmd, false
	}

	switch km.String() {
	case "enter":
		return p, nil, true
	case "tab":
		if s, ok := p.completion(); ok {
			p.setValue(p.focus, s)
			return p, nil, false
		}
		p.setFocus(p.focus + 1)
		return p, nil, false
	case "down":
		p.setFocus(p.focus + 1)
		return p, nil, false
	case "shift+tab", "up":
		p.setFocus(p.focus - 1)
		return p, nil, false
	}

	if p.onButton() {
		return p, nil, false
	}

	spec := p.specs[p.focus]
	if spec.kind == fieldChoice {
		step := 0
		switch km.String() {
		case "right", " ":
			step = 1
		case "left":
			step = -1
		}
		if step != 0 {
			next := domain.NextSeason(domain.Season(p.value(p.focus)), step)
			p.setValue(p.focus, string(next))
			delete(p.issues, spec.key)
		}
		return p, nil, false
	}

	before := p.value(p.focus)
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	if p.value(p.focus) != before {
		delete(p.issues, spec.key)
	}
	return p, cmd, false
}

func (p formPanel) view(th Theme, button string) string {
	var b strings.Builder
	for i, s := range p.specs {
		label := th.Label.Render(s.label)
		if i == p.focus {
			label = th.Focused.Render("› " + s.label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		if s.kind == fieldChoice {
			b.WriteString(renderChoice(th, p.value(i), s.hint, i == p.focus))
		} else {
			b.WriteString(p.inputs[i].View())
		}
		b.WriteString("\n")

		if msg, ok := p.issues[s.key]; ok {
			b.WriteString(th.Warn.Render("⚠ " + msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if p.onButton() {
		b.WriteString(th.ButtonFocused.Render(button))
	} else {
		b.WriteString(th.Button.Render(button))
	}
	return b.String()
}

func renderChoice(th Theme, value, hint string, focused bool) string {
	text := th.Subtitle.Render(hint)
	if value != "" {
		text = domain.Season(value).Label()
	}
	if focused {
		return "‹ " + text + " ›"
	}
	return "  " + text
}
