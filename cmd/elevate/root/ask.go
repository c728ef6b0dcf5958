package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NARENN143/Career/internal/app/mentor"
	"github.com/NARENN143/Career/internal/domain"
	"github.com/NARENN143/Career/internal/ui"
)

// offlineMentor always fails, forcing the session straight into the local
// strategy engine. The CLI never talks to the network.
type offlineMentor struct{}

func (offlineMentor) MentorReply(ctx context.Context, message string, convCtx domain.ConversationContext) (string, error) {
	return "", errors.New("offline mode")
}

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the local strategy engine",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, store, userID, err := openService()
			if err != nil {
				return err
			}

			p, err := svc.Load(ctx, userID)
			if err != nil {
				return err
			}

			sess := mentor.NewSession(offlineMentor{}, store, userID)
			out, err := sess.Send(ctx, p, strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconFeed+" local feed mode"))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), out.ModelMessage.Text)
			return nil
		},
	}

	return cmd
}
