package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kanban/internal/live"

	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reprint the selected board whenever it changes on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, err := a.currentBoard(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printBoard(out, st, a.store)

			eventsURL, err := live.EventsURL(a.client.BaseURL())
			if err != nil {
				return err
			}
			boardID := st.CurrentBoard.ID
			err = live.Subscribe(ctx, eventsURL, func(ev live.Event) {
				if err := a.store.FetchBoard(ctx, boardID); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "refresh after %s %s: %v\n", ev.Method, ev.Path, err)
					return
				}
				fmt.Fprintln(out)
				printBoard(out, a.store.Snapshot(), a.store)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
