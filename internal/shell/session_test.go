package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/aretw0/notepad/pkg/view"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer) {
	t.Helper()
	store := core.NewStore(core.NewSequenceIDs(0), nil)
	ctrl := view.NewController(store)
	var out bytes.Buffer
	return NewSession(ctrl, &out, WithColor(false), WithPrompt("")), &out
}

func TestSession_Transcript(t *testing.T) {
	s, out := newTestSession(t)

	input := strings.Join([]string{
		`add Groceries "milk, eggs"`,
		`add Todo "call mom"`,
		`list`,
		`search MILK`,
		`list`,
		`search`,
		`select 1`,
		`edit`,
		`commit Shopping "milk, eggs, bread"`,
		`show`,
		`delete`,
		`list`,
		`bogus`,
		`quit`,
		`add never`,
	}, "\n")

	require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))

	want := strings.Join([]string{
		"created 1",
		"created 2",
		"  [1] Groceries",
		"    milk, eggs",
		"  [2] Todo",
		"    call mom",
		"showing 1 of 2",
		"  [1] Groceries",
		"    milk, eggs",
		"showing 2 of 2",
		"selected 1",
		"editing 1, finish with commit TITLE [BODY...]",
		"saved 1",
		"[1] Shopping",
		"",
		"milk, eggs, bread",
		"deleted 1",
		"  [2] Todo",
		"    call mom",
		`error: unknown command "bogus", try help`,
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, s.Controller().Store().Len(), "nothing after quit runs")
}

func TestSession_CreateFlow(t *testing.T) {
	s, out := newTestSession(t)

	_, err := s.Exec("save Early")
	assert.ErrorIs(t, err, ErrUsage, "save requires new first")

	_, err = s.Exec("new")
	require.NoError(t, err)
	assert.True(t, s.Controller().State().Creating)

	_, err = s.Exec("save")
	assert.ErrorIs(t, err, ErrUsage, "save needs a title")
	assert.True(t, s.Controller().State().Creating)

	_, err = s.Exec("save Plan step one step two")
	require.NoError(t, err)
	assert.False(t, s.Controller().State().Creating)

	n, ok := s.Controller().Store().GetNote(1)
	require.True(t, ok)
	assert.Equal(t, "Plan", n.Title)
	assert.Equal(t, "step one step two", n.Body)
	assert.Contains(t, out.String(), "created 1")
}

func TestSession_Cancel(t *testing.T) {
	s, out := newTestSession(t)

	_, err := s.Exec("cancel")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "nothing to cancel")

	_, _ = s.Exec("add A")
	_, _ = s.Exec("select 1")
	_, _ = s.Exec("edit")
	_, _ = s.Exec("new")

	_, err = s.Exec("cancel")
	require.NoError(t, err)

	st := s.Controller().State()
	assert.False(t, st.Creating)
	assert.False(t, st.Editing)
	assert.True(t, st.HasSelection, "cancel keeps the selection")
}

func TestSession_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"Unknown Command", "frobnicate", ErrUnknownCommand},
		{"Add Without Title", "add", ErrUsage},
		{"Select Without Id", "select", ErrUsage},
		{"Select Bad Id", "select abc", ErrUsage},
		{"Select Missing Note", "select 42", core.ErrNoteNotFound},
		{"Edit Without Selection", "edit", ErrNoSelection},
		{"Commit Without Edit", "commit T", ErrUsage},
		{"Delete Without Selection", "delete", ErrNoSelection},
		{"Delete Missing Note", "delete 42", core.ErrNoteNotFound},
		{"Show Without Selection", "show", ErrNoSelection},
		{"Show Missing Note", "show 42", core.ErrNoteNotFound},
		{"Show Too Many Args", "show 1 2", ErrUsage},
		{"Unterminated Quote", `add "x`, ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			quit, err := s.Exec(tt.line)
			assert.False(t, quit)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSession_DeleteByIDClearsSelection(t *testing.T) {
	s, _ := newTestSession(t)
	_, _ = s.Exec("add A")
	_, _ = s.Exec("add B")
	_, _ = s.Exec("select 2")

	_, err := s.Exec("delete 1")
	require.NoError(t, err)
	assert.True(t, s.Controller().State().HasSelection, "deleting another note keeps the selection")

	_, err = s.Exec("delete 2")
	require.NoError(t, err)
	assert.False(t, s.Controller().State().HasSelection)
}

func TestSession_State(t *testing.T) {
	s, out := newTestSession(t)
	_, _ = s.Exec("add Groceries milk")
	_, _ = s.Exec("add Todo")
	_, _ = s.Exec("select 1")
	_, _ = s.Exec("search milk")
	out.Reset()

	_, err := s.Exec("state")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	mode := lines[len(lines)-1]
	assert.Equal(t, `selected 1, search "milk"`, mode)

	var got view.ControllerState
	require.NoError(t, json.Unmarshal([]byte(strings.Join(lines[:len(lines)-1], "\n")), &got))
	assert.Equal(t, view.ControllerState{
		View:    view.State{SelectedID: 1, HasSelection: true, SearchQuery: "milk"},
		Visible: 1,
		Total:   2,
	}, got)
}

func TestSession_Help(t *testing.T) {
	s, out := newTestSession(t)

	_, err := s.Exec("help")
	require.NoError(t, err)

	for name := range commands {
		assert.Contains(t, out.String(), name)
	}
	assert.Contains(t, out.String(), "quit")
}

func TestSession_Prompt(t *testing.T) {
	store := core.NewStore(core.NewSequenceIDs(0), nil)
	var out bytes.Buffer
	s := NewSession(view.NewController(store), &out, WithColor(false))

	require.NoError(t, s.Run(context.Background(), strings.NewReader("add A\n")))
	assert.Equal(t, DefaultPrompt+"created 1\n"+DefaultPrompt, out.String())
}

func TestSession_RunStopsOnCancelledContext(t *testing.T) {
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, strings.NewReader("add A\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Controller().Store().Len())
}

func TestSession_LongLines(t *testing.T) {
	t.Run("Beyond Scanner Default", func(t *testing.T) {
		s, out := newTestSession(t)
		body := strings.Repeat("x", 70*1024)

		input := "add A\nadd B " + body + "\nadd C\n"
		require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))

		assert.Equal(t, "created 1\ncreated 2\ncreated 3\n", out.String())
		n, ok := s.Controller().Store().GetNote(2)
		require.True(t, ok)
		assert.Equal(t, body, n.Body)
	})

	t.Run("Over Limit Is Reported And Skipped", func(t *testing.T) {
		store := core.NewStore(core.NewSequenceIDs(0), nil)
		var out bytes.Buffer
		s := NewSession(view.NewController(store), &out,
			WithColor(false), WithPrompt(""), WithMaxLineSize(16))

		input := "add A\nadd B " + strings.Repeat("x", 5000) + "\nadd C\n"
		require.NoError(t, s.Run(context.Background(), strings.NewReader(input)))

		want := fmt.Sprintf("created 1\nerror: %v: limit is 16 bytes\ncreated 2\n", ErrLineTooLong)
		assert.Equal(t, want, out.String())
		assert.Equal(t, []string{"A", "C"}, titles(store.ListNotes()))
	})

	t.Run("CRLF", func(t *testing.T) {
		s, _ := newTestSession(t)
		require.NoError(t, s.Run(context.Background(), strings.NewReader("add A\r\nadd B\r\n")))
		assert.Equal(t, []string{"A", "B"}, titles(s.Controller().Store().ListNotes()))
	})
}

func TestSession_RunStopsWhileWaitingForInput(t *testing.T) {
	s, _ := newTestSession(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, pr) }()

	_, err := io.WriteString(pw, "add A\n")
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return s.Controller().Store().Len() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}
}

func TestSession_ReadErrorEndsRun(t *testing.T) {
	s, _ := newTestSession(t)
	pr, pw := io.Pipe()
	boom := fmt.Errorf("stdin went away")

	go func() {
		_, _ = io.WriteString(pw, "add A\n")
		pw.CloseWithError(boom)
	}()

	err := s.Run(context.Background(), pr)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.Controller().Store().Len())
}

func titles(notes []core.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}
