package cli

import (
	"fmt"

	"kanban/internal/api"

	"github.com/spf13/cobra"
)

func newMembersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage the selected board's team members",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List team members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.currentBoard(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
			for _, m := range st.TeamMembers {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.Name, m.Color)
			}
			return tw.Flush()
		},
	})

	var color string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.currentBoard(cmd.Context())
			if err != nil {
				return err
			}
			req := api.CreateTeamMemberRequest{Name: args[0], BoardID: st.CurrentBoard.ID}
			if color != "" {
				req.Color = &color
			}
			m, err := a.store.CreateTeamMember(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", m.Name, m.ID)
			return nil
		},
	}
	add.Flags().StringVar(&color, "color", "", "avatar colour (random when empty)")
	cmd.AddCommand(add)

	var name string
	update := &cobra.Command{
		Use:   "update <member-id>",
		Short: "Rename or recolour a team member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			var req api.UpdateTeamMemberRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("color") {
				req.Color = &color
			}
			return a.store.UpdateTeamMember(cmd.Context(), args[0], req)
		},
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&color, "color", "", "new colour")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <member-id>",
		Short: "Remove a team member and their assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(); err != nil {
				return err
			}
			return a.store.DeleteTeamMember(cmd.Context(), args[0])
		},
	})

	return cmd
}

func newLabelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage the selected board's labels",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.currentBoard(cmd.Context())
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tCOLOR")
			for _, l := range st.Labels {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l.ID, l.Name, l.Color)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <name> <color>",
		Short: "Create a label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.currentBoard(cmd.Context())
			if err != nil {
				return err
			}
			l, err := a.store.CreateLabel(cmd.Context(), api.CreateLabelRequest{
				Name: args[0], Color: args[1], BoardID: st.CurrentBoard.ID,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created label %s (%s)\n", l.Name, l.ID)
			return nil
		},
	})

	var name, color string
	update := &cobra.Command{
		Use:   "update <label-id>",
		Short: "Rename or recolour a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			var req api.UpdateLabelRequest
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("color") {
				req.Color = &color
			}
			return a.store.UpdateLabel(cmd.Context(), args[0], req)
		},
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&color, "color", "", "new colour")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <label-id>",
		Short: "Delete a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			return a.store.DeleteLabel(cmd.Context(), args[0])
		},
	})

	return cmd
}

func newChecklistCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Edit card checklists",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <card-id> <content>",
		Short: "Append a checklist item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			return a.store.CreateChecklistItem(cmd.Context(), api.CreateChecklistItemRequest{
				CardID: args[0], Content: args[1],
			})
		},
	})

	var undo bool
	check := &cobra.Command{
		Use:   "check <item-id>",
		Short: "Mark an item done, or not done with --undo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			completed := !undo
			return a.store.UpdateChecklistItem(cmd.Context(), args[0], api.UpdateChecklistItemRequest{Completed: &completed})
		},
	}
	check.Flags().BoolVar(&undo, "undo", false, "mark as not done")
	cmd.AddCommand(check)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete a checklist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.currentBoard(cmd.Context()); err != nil {
				return err
			}
			return a.store.DeleteChecklistItem(cmd.Context(), args[0])
		},
	})

	return cmd
}
