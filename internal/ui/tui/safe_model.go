package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel keeps a panic in one form from taking the terminal down with it.
// The model state from before the failing message is kept.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.recovered("tui.update", r)
			s.m.toast = panicToast(s.m.active)
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.recovered("tui.view", r)
			out = panicToast(s.m.active)
		}
	}()
	return s.m.View()
}

func (s safeModel) recovered(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"form", s.m.active.form(),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

func panicToast(t tab) string {
	return "Unexpected error in the " + t.form() + " (see logs)"
}

var _ tea.Model = (*safeModel)(nil)
