// Package header keeps a notes file stamped with today's date.
//
// A stamped file starts with
//
//	06/15/2024
//	----------
//
// followed by whatever the user wrote. EnsureHeader adds the stamp when the
// day changes and can push earlier notes out of view with blank padding.
package header

import (
	"strings"
	"time"

	"github.com/idilsaglam/notes/internal/logs"
	"github.com/idilsaglam/notes/internal/store/notesfile"
)

const (
	// DateLayout formats the header as MM/DD/YYYY.
	DateLayout = "01/02/2006"

	// Separator is the line written directly under the header.
	Separator = "----------"

	// ClearLines is the number of blank lines inserted by a clear.
	ClearLines = 50
)

// Store reads and fully rewrites a notes file.
type Store interface {
	Read(path string) (string, error)
	Write(path, content string) error
}

// Writer stamps notes files. The zero value is not usable; call New.
type Writer struct {
	Store Store
	Now   func() time.Time
}

// New returns a Writer backed by the filesystem and the local clock.
func New() *Writer {
	return &Writer{
		Store: notesfile.Store{},
		Now:   time.Now,
	}
}

// Today formats t as a header line.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// EnsureHeader makes sure the file at path begins with today's header.
// With clear set, ClearLines blank lines are inserted under the separator.
// When the file is already stamped for today and clear is false the file is
// left untouched. Errors wrap errs.ErrRead or errs.ErrWrite.
func (w *Writer) EnsureHeader(path string, clear bool) error {
	content, err := w.Store.Read(path)
	if err != nil {
		return err
	}

	today := Today(w.Now())
	updated, changed := Rewrite(content, today, clear)
	if !changed {
		logs.Logger.Printf("header: %s already stamped for %s", path, today)
		return nil
	}

	logs.Logger.Printf("header: rewriting %s (today=%s clear=%t stamped=%t)",
		path, today, clear, strings.HasPrefix(content, today))
	return w.Store.Write(path, updated)
}

// Rewrite computes the new file content for content on the day today.
// The bool result is false when no write is needed.
func Rewrite(content, today string, clear bool) (string, bool) {
	stamped := strings.HasPrefix(content, today)

	header := today
	if stamped {
		header = firstLine(content)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(Separator)
	b.WriteString("\n")

	switch {
	case clear && stamped:
		b.WriteString(strings.Repeat("\n", ClearLines))
		b.WriteString(remainder(content))
	case clear:
		b.WriteString(strings.Repeat("\n", ClearLines))
		b.WriteString(content)
	case !stamped:
		b.WriteString("\n\n")
		b.WriteString(content)
	default:
		return content, false
	}
	return b.String(), true
}

func firstLine(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	return line
}

// remainder returns everything after the header line and, when present,
// the separator line directly beneath it.
func remainder(content string) string {
	_, rest, found := strings.Cut(content, "\n")
	if !found {
		return ""
	}
	line, after, _ := strings.Cut(rest, "\n")
	if strings.TrimSuffix(line, "\r") == Separator {
		return after
	}
	return rest
}
