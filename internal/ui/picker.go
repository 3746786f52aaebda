package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/notes/internal/model"
)

// ErrPickCancelled is returned when the picker is closed without a choice.
var ErrPickCancelled = errors.New("no editor selected")

// editorItem adapts an editor to bubbles/list.Item
type editorItem struct {
	editor model.Editor
	bin    string
}

func (i editorItem) Title() string       { return string(i.editor) }
func (i editorItem) Description() string { return i.bin }
func (i editorItem) FilterValue() string { return string(i.editor) }

// single-line delegate: "> vim  nvim"
type editorDelegate struct{}

func (d editorDelegate) Height() int                               { return 1 }
func (d editorDelegate) Spacing() int                              { return 0 }
func (d editorDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d editorDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(editorItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("%-8s %s", it.editor, mutedStyle.Render(it.bin))
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type pickerModel struct {
	list     list.Model
	chosen   model.Editor
	quitting bool
}

func newPickerModel(commands map[model.Editor]string, current model.Editor) pickerModel {
	items := make([]list.Item, 0, len(model.Editors))
	selected := 0
	for i, e := range model.Editors {
		bin := commands[e]
		if bin == "" {
			bin = e.Command()
		}
		items = append(items, editorItem{editor: e, bin: bin})
		if e == current {
			selected = i
		}
	}

	l := list.New(items, editorDelegate{}, 40, len(items)+12)
	l.Title = "Open notes with"
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.FilterInput.Prompt = "/ "

	pickBind := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{pickBind} }
	l.Select(selected)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(editorItem); ok {
				m.chosen = it.editor
			}
			m.quitting = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	return "\n" + m.list.View()
}

// PickEditor shows an interactive list of editors with current
// preselected and returns the one chosen.
func PickEditor(commands map[model.Editor]string, current model.Editor) (model.Editor, error) {
	p := tea.NewProgram(newPickerModel(commands, current))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := final.(pickerModel)
	if !ok || fm.chosen == "" {
		return "", ErrPickCancelled
	}
	return fm.chosen, nil
}
