package replay

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/scribe/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotebook() *core.Notebook {
	tick := int64(0)
	return core.NewNotebook(core.NotebookConfig{
		Clock: func() time.Time {
			tick++
			return time.UnixMilli(1000 + tick)
		},
	})
}

func TestRun_CreateEditDelete(t *testing.T) {
	nb := newNotebook()
	script := `
# two notes, then rename the first and drop the second
add
title Groceries
content milk\neggs
save

add
title Ideas
save

edit 1
title Shopping
save

edit 2
delete
`
	var out bytes.Buffer
	require.NoError(t, Run(nb, strings.NewReader(script), &out))

	notes := nb.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Shopping", notes[0].Title)
	assert.Equal(t, "milk\neggs", notes[0].Content)
	assert.False(t, nb.IsOpen())
}

func TestRun_CancelKeepsList(t *testing.T) {
	nb := newNotebook()
	script := "add\ntitle keep\nsave\nedit 1\ntitle changed\ncancel\nadd\ntitle dropped\ncancel\n"

	require.NoError(t, Run(nb, strings.NewReader(script), &bytes.Buffer{}))

	notes := nb.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "keep", notes[0].Title)
}

func TestRun_List(t *testing.T) {
	nb := newNotebook()
	script := "add\ntitle First\ncontent line one\\nline two\nsave\nlist\n"

	var out bytes.Buffer
	require.NoError(t, Run(nb, strings.NewReader(script), &out))

	n := nb.Notes()[0]
	assert.Equal(t, fmt.Sprintf("%d\tFirst\tline one\n", n.ID), out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		line    int
		wantErr error
	}{
		{"unknown command", "add\nfrobnicate\n", 2, ErrUnknownCommand},
		{"title while closed", "title nope\n", 1, core.ErrSessionClosed},
		{"save while closed", "\n\nsave\n", 3, core.ErrSessionClosed},
		{"delete while creating", "add\ndelete\n", 2, core.ErrNotEditing},
		{"edit out of range", "edit 3\n", 1, core.ErrNoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(newNotebook(), strings.NewReader(tt.script), &bytes.Buffer{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var lineErr *LineError
			require.ErrorAs(t, err, &lineErr)
			assert.Equal(t, tt.line, lineErr.Line)
		})
	}
}

func TestRun_EditNeedsNumber(t *testing.T) {
	err := Run(newNotebook(), strings.NewReader("edit first\n"), &bytes.Buffer{})
	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 1, lineErr.Line)
	assert.Contains(t, err.Error(), "edit needs a list position")
}

func TestWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteJSON(&out, []core.Note{{ID: 1, Title: "a", Content: "b"}}))

	var decoded []core.Note
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, []core.Note{{ID: 1, Title: "a", Content: "b"}}, decoded)

	out.Reset()
	require.NoError(t, WriteJSON(&out, []core.Note{}))
	assert.Equal(t, "[]\n", out.String())
}

func TestRun_LongLines(t *testing.T) {
	long := strings.Repeat("x", 200*1024)

	t.Run("content beyond the default scanner limit", func(t *testing.T) {
		nb := newNotebook()
		script := "add\ncontent " + long + "\nsave\n"
		require.NoError(t, Run(nb, strings.NewReader(script), &bytes.Buffer{}))
		require.Equal(t, 1, nb.Len())
		assert.Equal(t, long, nb.Notes()[0].Content)
	})

	t.Run("line over the limit reports its number", func(t *testing.T) {
		script := "add\ncontent " + strings.Repeat("x", MaxLineSize+1) + "\nsave\n"
		err := Run(newNotebook(), strings.NewReader(script), &bytes.Buffer{})
		assert.ErrorIs(t, err, bufio.ErrTooLong)

		var lineErr *LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, 2, lineErr.Line)
	})
}

func TestWriteText_EscapesFields(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteText(&out, []core.Note{
		{ID: 7, Title: "a\tb\nc", Content: "x\ty\\z\nsecond line"},
	}))
	assert.Equal(t, "7\ta\\tb\\nc\tx\\ty\\\\z\n", out.String())
}

func TestRun_ListEscapesTitles(t *testing.T) {
	nb := newNotebook()
	script := "add\ntitle a\\tb\nsave\nlist\n"

	var out bytes.Buffer
	require.NoError(t, Run(nb, strings.NewReader(script), &out))

	assert.Equal(t, "a\tb", nb.Notes()[0].Title)
	fields := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, `a\tb`, fields[1])
}
