package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"

	"github.com/mzheln/orgbook"
	"github.com/mzheln/orgbook/renderer"
)

type noteCmd struct {
	add      bool
	remove   string
	edit     string
	title    string
	content  string
	category string
	query    string
	deadline string
}

func (*noteCmd) Name() string     { return "note" }
func (*noteCmd) Synopsis() string { return "manage notes" }
func (*noteCmd) Usage() string {
	return `obk note [-cat <category>] [-q <query>]
obk note -add -t <title> -cat <important|tech|illegal|plans> [-m <content>] [-d <YYYY-MM-DD>]
obk note -edit <id> -m <content>
obk note -rm <id>

  Without action flags, lists notes: dated plans first, soonest deadline on
  top, then everything else newest first. The query searches titles and
  content. Only plans take a deadline.
`
}

func (c *noteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.add, "add", false, "Add a new note")
	f.StringVar(&c.remove, "rm", "", "Remove the note with this id")
	f.StringVar(&c.edit, "edit", "", "Replace the content of the note with this id")
	f.StringVar(&c.title, "t", "", "Note title")
	f.StringVar(&c.content, "m", "", "Note content")
	f.StringVar(&c.category, "cat", "", "Note category")
	f.StringVar(&c.query, "q", "", "Free text search over titles and content")
	f.StringVar(&c.deadline, "d", "", "Deadline (YYYY-MM-DD), plans only")
}

func (c *noteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession()
	if err != nil {
		return fail(err)
	}
	ns := s.Notes()

	switch {
	case c.add:
		note := orgbook.Note{
			Title:    c.title,
			Content:  c.content,
			Category: orgbook.NoteCategory(c.category),
		}
		if c.deadline != "" {
			d, err := time.Parse("2006-01-02", c.deadline)
			if err != nil {
				return fail(fmt.Errorf("invalid deadline %q: %w", c.deadline, err))
			}
			note.Deadline = &d
		}
		n, err := ns.Add(note)
		if err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainNotes, ns); err != nil {
			return fail(err)
		}
		fmt.Printf("Added note %q (%s)\n", n.Title, n.ID)

	case c.edit != "":
		if err := ns.SetContent(c.edit, c.content); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainNotes, ns); err != nil {
			return fail(err)
		}
		fmt.Printf("Updated note %s\n", c.edit)

	case c.remove != "":
		if err := ns.Remove(c.remove); err != nil {
			return fail(err)
		}
		if err := s.save(orgbook.DomainNotes, ns); err != nil {
			return fail(err)
		}
		fmt.Printf("Removed note %s\n", c.remove)

	default:
		var category orgbook.NoteCategory
		if c.category != "" {
			category, err = orgbook.ParseNoteCategory(c.category)
			if err != nil {
				return fail(err)
			}
		}
		printMarkdown(renderer.NotesMarkdown(ns, category, c.query))
	}
	return subcommands.ExitSuccess
}
