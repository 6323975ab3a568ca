package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/client/services"
)

// getMultiline is a test seam like getSimpleText.
var getMultiline = GetMultiline

// ListNotes prints all notes, or those of one category: notes [category].
func (a *App) ListNotes(ctx context.Context, args []string) error {
	var (
		notes []models.Note
		err   error
	)
	if len(args) > 0 {
		category, ok := lookupCategory(strings.Join(args, " "))
		if !ok {
			return unknownCategory(strings.Join(args, " "))
		}
		notes, err = a.notes.ListByCategory(ctx, category)
	} else {
		notes, err = a.notes.List(ctx)
	}
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		a.println("No notes yet.")
		return nil
	}
	for _, n := range notes {
		cycle := ""
		if n.CycleID != "" {
			cycle = " cycle=" + n.CycleID
		}
		a.printf("%s  %s  [%s]%s\n", n.ID, n.Date.Local().Format(time.DateOnly), n.Category, cycle)
		for _, line := range strings.Split(n.Text, "\n") {
			a.printf("    %s\n", line)
		}
	}
	return nil
}

func (a *App) AddNote(ctx context.Context, _ []string) error {
	names := make([]string, len(models.NoteCategories))
	for i, c := range models.NoteCategories {
		names[i] = fmt.Sprintf("%d) %s", i+1, c)
	}

	raw, err := getSimpleText(a.reader, "Category: "+strings.Join(names, ", "), a.out)
	if err != nil {
		return err
	}
	category, ok := lookupCategory(raw)
	if !ok {
		return unknownCategory(raw)
	}

	cycleID, err := getSimpleText(a.reader, "Cycle id (optional)", a.out)
	if err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Text", a.out)
	if err != nil {
		return err
	}

	n, err := a.notes.Add(ctx, category, text, cycleID, time.Time{})
	if err != nil {
		return err
	}
	a.printf("Note %s added.\n", n.ID)
	return nil
}

// DeleteNote removes a note by id: delnote <id>.
func (a *App) DeleteNote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: delnote <id>")
		return nil
	}
	if err := a.notes.Delete(ctx, args[0]); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return models.NewValidationError(fmt.Sprintf("Note %s not found", args[0]))
		}
		return err
	}
	a.println("Note deleted.")
	return nil
}

// lookupCategory accepts a category name (any case) or its 1-based number.
func lookupCategory(s string) (models.NoteCategory, bool) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		if i >= 1 && i <= len(models.NoteCategories) {
			return models.NoteCategories[i-1], true
		}
		return "", false
	}
	for _, c := range models.NoteCategories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

func unknownCategory(s string) error {
	return models.NewValidationError(fmt.Sprintf("Unknown note category %q", s))
}
