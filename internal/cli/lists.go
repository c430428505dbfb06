package cli

import (
	"fmt"

	"kanban/internal/api"

	"github.com/spf13/cobra"
)

func newListsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage the selected board's lists",
	}

	var color string
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Append a list to the selected board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.currentBoard(cmd.Context())
			if err != nil {
				return err
			}
			req := api.CreateListRequest{Title: args[0], BoardID: st.CurrentBoard.ID}
			if color != "" {
				req.Color = &color
			}
			list, err := a.store.CreateList(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created list %s (%s) at %d\n", list.Title, list.ID, list.Position)
			return nil
		},
	}
	create.Flags().StringVar(&color, "color", "", "list colour")
	cmd.AddCommand(create)

	var title string
	var position int
	update := &cobra.Command{
		Use:   "update <list-id>",
		Short: "Rename, recolour or reposition a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			var req api.UpdateListRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("position") {
				req.Position = &position
			}
			if cmd.Flags().Changed("color") {
				req.Color = api.Of(color)
				if color == "" {
					req.Color = api.Null[string]()
				}
			}
			return a.store.UpdateList(cmd.Context(), args[0], req)
		},
	}
	update.Flags().StringVar(&title, "title", "", "new title")
	update.Flags().IntVar(&position, "position", 0, "new position")
	update.Flags().StringVar(&color, "color", "", "new colour, empty to clear")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			return a.store.DeleteList(cmd.Context(), args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reorder <list-id>...",
		Short: "Put the selected board's lists in the given order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			if err := a.store.ReorderLists(cmd.Context(), args); err != nil {
				return err
			}
			for _, l := range a.store.Snapshot().Lists {
				fmt.Fprintf(cmd.OutOrStdout(), "%5d  %s\n", l.Position, l.Title)
			}
			return nil
		},
	})

	return cmd
}
