package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/notes/internal/model"
)

func update(t *testing.T, m pickerModel, msg tea.Msg) pickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(pickerModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return pm
}

func TestPicker_PreselectsCurrent(t *testing.T) {
	m := newPickerModel(model.DefaultCommands, model.EditorCursor)

	it, ok := m.list.SelectedItem().(editorItem)
	if !ok {
		t.Fatal("expected a selected item")
	}
	if it.editor != model.EditorCursor {
		t.Errorf("expected cursor preselected, got %q", it.editor)
	}
}

func TestPicker_EnterChooses(t *testing.T) {
	m := newPickerModel(model.DefaultCommands, model.EditorVim)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.chosen != model.EditorVSCode {
		t.Errorf("expected vscode, got %q", m.chosen)
	}
	if !m.quitting {
		t.Error("expected picker to quit after choosing")
	}
	if m.View() != "" {
		t.Error("expected empty view after quitting")
	}
}

func TestPicker_EscCancels(t *testing.T) {
	m := newPickerModel(model.DefaultCommands, model.EditorVim)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.chosen != "" {
		t.Errorf("expected no choice, got %q", m.chosen)
	}
	if !m.quitting {
		t.Error("expected picker to quit")
	}
}

func TestPicker_ShowsConfiguredBinary(t *testing.T) {
	commands := map[model.Editor]string{model.EditorVim: "vim"}
	m := newPickerModel(commands, model.EditorVim)

	it := m.list.Items()[0].(editorItem)
	if it.bin != "vim" {
		t.Errorf("expected configured binary vim, got %q", it.bin)
	}
	it = m.list.Items()[1].(editorItem)
	if it.bin != "cursor" {
		t.Errorf("expected default binary cursor, got %q", it.bin)
	}
}
