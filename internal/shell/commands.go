package shell

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/aretw0/notepad/pkg/core"
)

type command struct {
	usage   string
	summary string
	run     func(s *Session, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"add":    {"add TITLE [BODY...]", "create a note in one step", runAdd},
		"new":    {"new", "start creating a note", runNew},
		"save":   {"save TITLE [BODY...]", "finish creating a note", runSave},
		"cancel": {"cancel", "abandon the note being created or edited", runCancel},
		"select": {"select ID", "select a note", runSelect},
		"edit":   {"edit", "start editing the selected note", runEdit},
		"commit": {"commit TITLE [BODY...]", "save the selected note", runCommit},
		"delete": {"delete [ID]", "delete a note, the selected one by default", runDelete},
		"search": {"search [QUERY...]", "filter the list, no query clears it", runSearch},
		"list":   {"list", "show the visible notes", runList},
		"show":   {"show [ID]", "show a note in full, the selected one by default", runShow},
		"state":  {"state", "print the view state as JSON", runState},
		"help":   {"help", "list commands", runHelp},
	}
}

func usage(name string) error {
	return fmt.Errorf("%w: %s", ErrUsage, commands[name].usage)
}

// titleBody reads "TITLE [BODY...]"; body words are joined by single spaces.
func titleBody(name string, args []string) (string, string, error) {
	if len(args) == 0 {
		return "", "", usage(name)
	}
	return args[0], strings.Join(args[1:], " "), nil
}

func parseID(name string, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: invalid id %q", ErrUsage, commands[name].usage, arg)
	}
	return id, nil
}

// lookup resolves an optional id argument, falling back to the selection.
func (s *Session) lookup(name string, args []string) (core.Note, error) {
	switch len(args) {
	case 0:
		n, ok := s.ctrl.Selected()
		if !ok {
			return core.Note{}, ErrNoSelection
		}
		return n, nil
	case 1:
		id, err := parseID(name, args[0])
		if err != nil {
			return core.Note{}, err
		}
		n, ok := s.ctrl.Store().GetNote(id)
		if !ok {
			return core.Note{}, fmt.Errorf("%w: %d", core.ErrNoteNotFound, id)
		}
		return n, nil
	default:
		return core.Note{}, usage(name)
	}
}

func runAdd(s *Session, args []string) error {
	title, body, err := titleBody("add", args)
	if err != nil {
		return err
	}
	s.ctrl.StartCreate()
	n := s.ctrl.CommitCreate(title, body)
	s.printf("created %d\n", n.ID)
	return nil
}

func runNew(s *Session, args []string) error {
	if len(args) != 0 {
		return usage("new")
	}
	s.ctrl.StartCreate()
	s.println("creating, finish with save TITLE [BODY...]")
	return nil
}

func runSave(s *Session, args []string) error {
	if !s.ctrl.State().Creating {
		return fmt.Errorf("%w: not creating a note, start with new", ErrUsage)
	}
	title, body, err := titleBody("save", args)
	if err != nil {
		return err
	}
	n := s.ctrl.CommitCreate(title, body)
	s.printf("created %d\n", n.ID)
	return nil
}

func runCancel(s *Session, args []string) error {
	st := s.ctrl.State()
	if !st.Creating && !st.Editing {
		s.println("nothing to cancel")
		return nil
	}
	s.ctrl.CancelCreate()
	s.ctrl.CancelEdit()
	s.println("cancelled")
	return nil
}

func runSelect(s *Session, args []string) error {
	if len(args) != 1 {
		return usage("select")
	}
	id, err := parseID("select", args[0])
	if err != nil {
		return err
	}
	if _, ok := s.ctrl.Store().GetNote(id); !ok {
		return fmt.Errorf("%w: %d", core.ErrNoteNotFound, id)
	}
	s.ctrl.SelectNote(id)
	s.printf("selected %d\n", id)
	return nil
}

func runEdit(s *Session, args []string) error {
	if len(args) != 0 {
		return usage("edit")
	}
	if !s.ctrl.StartEdit() {
		return ErrNoSelection
	}
	n, _ := s.ctrl.Selected()
	s.printf("editing %d, finish with commit TITLE [BODY...]\n", n.ID)
	return nil
}

func runCommit(s *Session, args []string) error {
	st := s.ctrl.State()
	if !st.Editing {
		return fmt.Errorf("%w: not editing, start with edit", ErrUsage)
	}
	title, body, err := titleBody("commit", args)
	if err != nil {
		return err
	}
	s.ctrl.CommitEdit(title, body)
	s.printf("saved %d\n", st.SelectedID)
	return nil
}

func runDelete(s *Session, args []string) error {
	switch len(args) {
	case 0:
		st := s.ctrl.State()
		if !st.HasSelection {
			return ErrNoSelection
		}
		s.ctrl.DeleteSelected()
		s.printf("deleted %d\n", st.SelectedID)
	case 1:
		id, err := parseID("delete", args[0])
		if err != nil {
			return err
		}
		if _, ok := s.ctrl.Store().GetNote(id); !ok {
			return fmt.Errorf("%w: %d", core.ErrNoteNotFound, id)
		}
		s.ctrl.DeleteNote(id)
		s.printf("deleted %d\n", id)
	default:
		return usage("delete")
	}
	return nil
}

func runSearch(s *Session, args []string) error {
	s.ctrl.SetSearchQuery(strings.Join(args, " "))
	s.printf("showing %d of %d\n", len(s.ctrl.Visible()), s.ctrl.Store().Len())
	return nil
}

func runList(s *Session, args []string) error {
	if len(args) != 0 {
		return usage("list")
	}
	s.println(s.render.List(s.ctrl.Visible(), s.ctrl.State()))
	return nil
}

func runShow(s *Session, args []string) error {
	n, err := s.lookup("show", args)
	if err != nil {
		return err
	}
	s.println(s.render.Note(n))
	return nil
}

func runState(s *Session, args []string) error {
	if len(args) != 0 {
		return usage("state")
	}
	data, err := json.MarshalIndent(s.ctrl.Snapshot().State(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	s.println(string(data))
	s.println(s.render.Mode(s.ctrl.State()))
	return nil
}

func runHelp(s *Session, args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s.printf("  %-24s %s\n", commands[name].usage, commands[name].summary)
	}
	s.printf("  %-24s %s\n", "quit", "end the session")
	return nil
}
