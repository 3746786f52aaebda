package model

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Editor selects which external program opens the notes file.
type Editor string

const (
	EditorVim    Editor = "vim"
	EditorCursor Editor = "cursor"
	EditorVSCode Editor = "vscode"
)

// Editors lists the supported editors in display order.
var Editors = []Editor{EditorVim, EditorCursor, EditorVSCode}

// DefaultCommands maps each editor to the binary launched for it.
var DefaultCommands = map[Editor]string{
	EditorVim:    "nvim",
	EditorCursor: "cursor",
	EditorVSCode: "code",
}

var editorAliases = map[string]Editor{
	"vim":    EditorVim,
	"nvim":   EditorVim,
	"cursor": EditorCursor,
	"vscode": EditorVSCode,
	"code":   EditorVSCode,
	"vs":     EditorVSCode,
}

// Command returns the default binary for e.
func (e Editor) Command() string { return DefaultCommands[e] }

func (e Editor) String() string { return string(e) }

// ParseEditor resolves a user-supplied editor name. Matching is
// case-insensitive and accepts the binary names as aliases.
func ParseEditor(s string) (Editor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if e, ok := editorAliases[name]; ok {
		return e, nil
	}
	if hint := suggestEditor(name); hint != "" {
		return "", fmt.Errorf("unknown editor %q (did you mean %q?)", s, hint)
	}
	return "", fmt.Errorf("unknown editor %q (want one of: %s)", s, editorList())
}

func suggestEditor(name string) string {
	if name == "" {
		return ""
	}
	names := make([]string, 0, len(Editors))
	for _, e := range Editors {
		names = append(names, string(e))
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func editorList() string {
	parts := make([]string, len(Editors))
	for i, e := range Editors {
		parts[i] = string(e)
	}
	return strings.Join(parts, ", ")
}
