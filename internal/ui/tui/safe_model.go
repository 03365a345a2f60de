package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const crashToast = "Something broke while browsing; details are in .genesis/logs/genesis.log"

// safeModel keeps the browser alive when the family model panics. A panic in
// Update drops back to the family list; a panic in View shows crashToast.
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
			s.report("tui.update", r, fmt.Sprintf("%T", msg))
			s.m = s.m.home()
			s.m.loading = false
			s.m.toast = crashToast
			tm, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	if mm, ok := inner.(model); ok {
		s.m = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.view", r, "")
			out = crashToast
		}
	}()
	return s.m.View()
}

// report logs where the browser was when it panicked.
func (s safeModel) report(where string, r any, msgType string) {
	attrs := []any{
		"where", where,
		"screen", s.m.scr.String(),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}
	if msgType != "" {
		attrs = append(attrs, "msg_type", msgType)
	}
	if s.m.tree != nil {
		attrs = append(attrs, "family", s.m.tree.Name())
	}
	if s.m.selected != nil {
		attrs = append(attrs, "member", safeName(s.m.selected))
	}
	s.log.Error("browser.panic", attrs...)
}

var _ tea.Model = safeModel{}
