package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"kanban/internal/api"
	"kanban/internal/store"
)

const dateLayout = "2006-01-02"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printBoards(w io.Writer, boards []api.Board, canView func(string) bool) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTITLE\tLISTS\tACCESS")
	for _, b := range boards {
		status := "locked"
		if canView(b.ID) {
			status = "open"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", b.ID, b.Title, len(b.Lists), status)
	}
	tw.Flush()
}

// printBoard renders the current board list by list.
func printBoard(w io.Writer, st store.State, s *store.Store) {
	if st.CurrentBoard == nil {
		return
	}
	fmt.Fprintf(w, "%s (%s)\n", st.CurrentBoard.Title, st.CurrentBoard.ID)
	if st.CurrentBoard.AccessCode != nil {
		fmt.Fprintf(w, "access code: %s\n", *st.CurrentBoard.AccessCode)
	}
	for _, l := range st.Lists {
		fmt.Fprintf(w, "\n== %s [%s] ==\n", l.Title, l.ID)
		for _, c := range s.CardsInList(l.ID) {
			printCardLine(w, c)
		}
	}
}

func printCardLine(w io.Writer, c api.Card) {
	var extra []string
	if c.DueDate != nil {
		extra = append(extra, "due "+c.DueDate.Format(dateLayout))
	}
	if c.Status != "" && c.Status != "active" {
		extra = append(extra, c.Status)
	}
	for _, a := range c.Assignees {
		extra = append(extra, "@"+a.TeamMember.Name)
	}
	for _, l := range c.Labels {
		extra = append(extra, "#"+l.Label.Name)
	}
	if n := len(c.Checklist); n > 0 {
		done := 0
		for _, item := range c.Checklist {
			if item.Completed {
				done++
			}
		}
		extra = append(extra, fmt.Sprintf("%d/%d", done, n))
	}

	line := fmt.Sprintf("  %-6s %s  %s", c.Priority, c.Title, c.ID)
	if len(extra) > 0 {
		line += "  (" + strings.Join(extra, ", ") + ")"
	}
	fmt.Fprintln(w, line)
}

func printCard(w io.Writer, c api.Card) {
	fmt.Fprintf(w, "%s\n  id: %s\n  list: %s\n  position: %d\n  priority: %s\n  status: %s\n",
		c.Title, c.ID, c.ListID, c.Position, c.Priority, c.Status)
	if c.Description != nil {
		fmt.Fprintf(w, "  description: %s\n", *c.Description)
	}
	if c.DueDate != nil {
		fmt.Fprintf(w, "  due: %s\n", c.DueDate.Format(dateLayout))
	}
	for _, a := range c.Assignees {
		fmt.Fprintf(w, "  assignee: %s (%s)\n", a.TeamMember.Name, a.TeamMemberID)
	}
	for _, item := range c.Checklist {
		mark := " "
		if item.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s  %s\n", mark, item.Content, item.ID)
	}
}
