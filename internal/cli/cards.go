package cli

import (
	"fmt"
	"time"

	"kanban/internal/api"
	"kanban/internal/store"

	"github.com/spf13/cobra"
)

func newCardsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Create, edit, move and filter cards on the selected board",
	}

	var listID, description, priority, due string
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Add a card to the end of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			req := api.CreateCardRequest{Title: args[0], ListID: listID}
			if description != "" {
				req.Description = &description
			}
			if priority != "" {
				req.Priority = &priority
			}
			if due != "" {
				d, err := time.Parse(dateLayout, due)
				if err != nil {
					return fmt.Errorf("invalid --due: %w", err)
				}
				req.DueDate = &d
			}
			card, err := a.store.CreateCard(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created card %s (%s) at %d\n", card.Title, card.ID, card.Position)
			return nil
		},
	}
	create.Flags().StringVar(&listID, "list", "", "list id")
	create.Flags().StringVar(&description, "description", "", "card description")
	create.Flags().StringVar(&priority, "priority", "", "low, medium or high")
	create.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	_ = create.MarkFlagRequired("list")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card of the selected board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.currentBoard(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range st.Cards {
				if c.ID == args[0] {
					printCard(cmd.OutOrStdout(), c)
					return nil
				}
			}
			return fmt.Errorf("card %s is not on board %s", args[0], st.CurrentBoard.Title)
		},
	})

	var title, status string
	update := &cobra.Command{
		Use:   "update <card-id>",
		Short: "Edit a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			var req api.UpdateCardRequest
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("description") {
				req.Description = api.Of(description)
				if description == "" {
					req.Description = api.Null[string]()
				}
			}
			if flags.Changed("priority") {
				req.Priority = &priority
			}
			if flags.Changed("status") {
				req.Status = &status
			}
			if flags.Changed("due") {
				req.DueDate = api.Null[time.Time]()
				if due != "" {
					d, err := time.Parse(dateLayout, due)
					if err != nil {
						return fmt.Errorf("invalid --due: %w", err)
					}
					req.DueDate = api.Of(d)
				}
			}
			return a.store.UpdateCard(cmd.Context(), args[0], req)
		},
	}
	update.Flags().StringVar(&title, "title", "", "new title")
	update.Flags().StringVar(&description, "description", "", "new description, empty to clear")
	update.Flags().StringVar(&priority, "priority", "", "low, medium or high")
	update.Flags().StringVar(&status, "status", "", "active, completed or archived")
	update.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD), empty to clear")
	cmd.AddCommand(update)

	var position int
	move := &cobra.Command{
		Use:   "move <card-id> <list-id>",
		Short: "Move a card to a list, at the end unless --position is given",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			if cmd.Flags().Changed("position") {
				return a.store.MoveCard(cmd.Context(), args[0], args[1], position)
			}
			return a.store.MoveCardToList(cmd.Context(), args[0], args[1])
		},
	}
	move.Flags().IntVar(&position, "position", 0, "target position")
	cmd.AddCommand(move)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			return a.store.DeleteCard(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "assign <card-id> <member-id>",
		Short: "Assign a team member to a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			return a.store.AssignMember(cmd.Context(), args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unassign <card-id> <member-id>",
		Short: "Remove a team member from a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			return a.store.UnassignMember(cmd.Context(), args[0], args[1])
		},
	})

	var remove bool
	label := &cobra.Command{
		Use:   "label <card-id> <label-id>",
		Short: "Attach a label to a card, or detach it with --remove",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			if remove {
				return a.store.RemoveLabelFromCard(cmd.Context(), args[0], args[1])
			}
			return a.store.AddLabelToCard(cmd.Context(), args[0], args[1])
		},
	}
	label.Flags().BoolVar(&remove, "remove", false, "detach instead of attach")
	cmd.AddCommand(label)

	var query, member, filterPriority string
	filter := &cobra.Command{
		Use:   "filter",
		Short: "Search the selected board's cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			for _, c := range a.store.FilterCards(query, filterPriority, member) {
				printCardLine(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
	filter.Flags().StringVar(&query, "query", "", "text in title or description")
	filter.Flags().StringVar(&filterPriority, "priority", store.FilterAll, "priority to match")
	filter.Flags().StringVar(&member, "member", store.FilterAll, "assigned member id")
	cmd.AddCommand(filter)

	return cmd
}

func newCalendarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "List the selected board's cards by due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			cal := a.store.CalendarEvents(time.Now())
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "overdue %d  upcoming %d  completed %d\n\n",
				len(cal.Overdue), len(cal.Upcoming), len(cal.Completed))

			tw := newTable(w)
			fmt.Fprintln(tw, "DUE\tCARD\tLIST\tPRIORITY\tSTATE")
			for _, ev := range cal.Events {
				state := "upcoming"
				switch {
				case ev.Status == "completed":
					state = "completed"
				case ev.Overdue:
					state = "overdue"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					ev.Start.Format(dateLayout), ev.Title, ev.ListTitle, ev.Priority, state)
			}
			return tw.Flush()
		},
	}
}
