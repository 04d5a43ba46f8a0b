// Package replay drives a notebook from a line-oriented script of user actions.
//
// Each line is one action, the same ones a user performs on screen:
//
//	add               open the editor for a new note
//	edit <pos>        open the editor on the note at list position pos (1-based)
//	title <text>      replace the title draft
//	content <text>    replace the content draft ("\n" starts a new line)
//	save              commit the drafts
//	cancel            discard the drafts
//	delete            delete the note being edited
//	list              print the current list
//
// Blank lines and lines starting with # are ignored.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/scribe/pkg/core"
)

// ErrUnknownCommand is returned for a line whose first word is not an action.
var ErrUnknownCommand = errors.New("unknown command")

// LineError locates a failure in the script.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// MaxLineSize bounds a single script line.
const MaxLineSize = 1 << 20

// Run executes every line of script against nb, writing list output to out.
// It stops at the first failing line.
func Run(nb *core.Notebook, script io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(script)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := step(nb, line, out); err != nil {
			return &LineError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return &LineError{Line: lineNo + 1, Err: err}
	}
	return nil
}

func step(nb *core.Notebook, line string, out io.Writer) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "add":
		nb.OpenForCreate()
		return nil
	case "edit":
		pos, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("edit needs a list position: %w", err)
		}
		n, ok := nb.NoteAt(pos - 1)
		if !ok {
			return fmt.Errorf("no note at position %d: %w", pos, core.ErrNoteNotFound)
		}
		return nb.OpenForEdit(n)
	case "title":
		return nb.UpdateDraftTitle(unescape(arg))
	case "content":
		return nb.UpdateDraftContent(unescape(arg))
	case "save":
		_, err := nb.Save()
		return err
	case "cancel":
		nb.Cancel()
		return nil
	case "delete":
		return nb.DeleteSelected()
	case "list":
		return WriteText(out, nb.Notes())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`).Replace(s)
}

// escape is the inverse of unescape, plus \r, so a field never spans a line or a column.
func escape(s string) string {
	return strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\t", `\t`, "\r", `\r`).Replace(s)
}

// WriteText prints one note per line: id, title and the single-line preview, tab separated.
// Backslashes, tabs and line breaks inside a field are written as escapes.
func WriteText(w io.Writer, notes []core.Note) error {
	for _, n := range notes {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, escape(n.Title), escape(n.Preview())); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints the notes as an indented JSON array.
func WriteJSON(w io.Writer, notes []core.Note) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(notes)
}
