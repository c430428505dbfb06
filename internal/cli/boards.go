package cli

import (
	"fmt"

	"kanban/internal/api"

	"github.com/spf13/cobra"
)

func newBoardsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "List, show and manage boards",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every board and whether it is unlocked here",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if err := a.store.FetchBoards(cmd.Context()); err != nil {
				return err
			}
			printBoards(cmd.OutOrStdout(), a.store.Snapshot().Boards, a.gate.CanView)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the selected board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.currentBoard(cmd.Context())
			if err != nil {
				return err
			}
			printBoard(cmd.OutOrStdout(), st, a.store)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "use <board-id>",
		Short: "Select a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if !a.gate.CanView(args[0]) {
				return fmt.Errorf("board %s is locked: run `kanbanctl unlock %s <code>`", args[0], args[0])
			}
			if err := a.store.FetchBoard(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selected %s\n", a.store.Snapshot().CurrentBoard.Title)
			return nil
		},
	})

	var description, background, code string
	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a board with the default lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			req := api.CreateBoardRequest{Title: args[0]}
			if description != "" {
				req.Description = &description
			}
			if background != "" {
				req.Background = &background
			}
			if code != "" {
				req.AccessCode = &code
			}
			board, err := a.store.CreateBoard(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := a.gate.Grant(board.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created board %s (%s)\n", board.Title, board.ID)
			if board.AccessCode != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Access code: %s\n", *board.AccessCode)
			}
			return nil
		},
	}
	create.Flags().StringVar(&description, "description", "", "board description")
	create.Flags().StringVar(&background, "background", "", "background colour")
	create.Flags().StringVar(&code, "access-code", "", "access code (generated when empty)")
	cmd.AddCommand(create)

	var title string
	update := &cobra.Command{
		Use:   "update <board-id>",
		Short: "Update a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			var req api.UpdateBoardRequest
			if cmd.Flags().Changed("title") {
				req.Title = &title
			}
			if cmd.Flags().Changed("description") {
				req.Description = api.Of(description)
				if description == "" {
					req.Description = api.Null[string]()
				}
			}
			if cmd.Flags().Changed("background") {
				req.Background = &background
			}
			return a.store.UpdateBoard(cmd.Context(), args[0], req)
		},
	}
	update.Flags().StringVar(&title, "title", "", "new title")
	update.Flags().StringVar(&description, "description", "", "new description, empty to clear")
	update.Flags().StringVar(&background, "background", "", "new background colour")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board and everything on it (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			if err := a.store.DeleteBoard(cmd.Context(), args[0]); err != nil {
				return err
			}
			_ = a.gate.Revoke(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted board %s\n", args[0])
			return nil
		},
	})

	return cmd
}
