package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stickhero/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{" ", core.ActionHold, false},
		{"enter", core.ActionHold, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"x", core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tt.key))
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%s, %v), want (%s, %v)", tt.key, action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestApplyKeyTogglesHold(t *testing.T) {
	km := NewKeyMapper()
	var p core.Pointer
	frame := core.NewInputFrame()

	km.ApplyKey(keyMsg(" "), &p, &frame)
	if !p.Holding() {
		t.Error("space did not start holding")
	}
	km.ApplyKey(keyMsg("enter"), &p, &frame)
	if p.Holding() {
		t.Error("enter did not stop holding")
	}
	if frame.Has(core.ActionHold) {
		t.Error("hold keys must drive the pointer, not the frame")
	}

	km.ApplyKey(keyMsg("p"), &p, &frame)
	if !frame.Has(core.ActionPause) {
		t.Error("p did not set pause")
	}
	if !km.ApplyKey(keyMsg("q"), &p, &frame) {
		t.Error("q did not report quit")
	}
}

func TestApplyMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name    string
		msg     tea.MouseMsg
		start   bool
		want    bool
		changed bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, false, true, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false, false, false},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, true, false, true},
		{"release without button", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, true, false, true},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p core.Pointer
			if tt.start {
				p.Down()
			}
			changed := km.ApplyMouse(tt.msg, &p)
			if p.Holding() != tt.want || changed != tt.changed {
				t.Errorf("holding = %v changed = %v, want %v and %v", p.Holding(), changed, tt.want, tt.changed)
			}
		})
	}
}

func TestMouseLastEdgeWins(t *testing.T) {
	km := NewKeyMapper()
	var p core.Pointer

	// Press and release between two ticks: the tick sees the release.
	km.ApplyMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &p)
	km.ApplyMouse(tea.MouseMsg{Action: tea.MouseActionRelease}, &p)

	frame := core.NewInputFrame()
	p.Apply(&frame)
	if frame.Has(core.ActionHold) {
		t.Error("release delivered last, but the frame holds")
	}
}
