package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NARENN143/Career/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Toggle a roadmap task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, userID, err := openService()
			if err != nil {
				return err
			}

			p, err := svc.ToggleTask(ctx, userID, args[0])
			if err != nil {
				return err
			}

			// Toggle succeeded, so the task is present.
			task := p.FindTask(args[0])
			state := ui.Muted.Render("pending")
			if task.Completed {
				state = ui.Good.Render("completed " + ui.IconDone)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", ui.IconTask, task.Title, state)
			return nil
		},
	}

	return cmd
}
