package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NARENN143/Career/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak and roadmap progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, userID, err := openService()
			if err != nil {
				return err
			}

			p, err := svc.Load(ctx, userID)
			if err != nil {
				return err
			}

			if !p.OnboardingComplete {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Profile not onboarded yet. Complete onboarding through the API first."))
				return nil
			}

			all := p.AllTasks()
			done := 0
			for _, t := range all {
				if t.Completed {
					done++
				}
			}
			percent := 0
			if len(all) > 0 {
				percent = done * 100 / len(all)
			}

			phase := "Foundation"
			if len(p.Roadmap) > 0 && p.Roadmap[0].Title != "" {
				phase = p.Roadmap[0].Title
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpark, "Career Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", p.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Target role", p.SelectedCareer))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFlame, p.Streak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Phase", phase))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Progress", fmt.Sprintf("%d%% (%d/%d tasks)", percent, done, len(all))))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTarget+" Pending tasks"))
			pendingShown := 0
			for _, t := range all {
				if t.Completed {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.IconTask, t.Title,
					ui.Muted.Render(fmt.Sprintf("(%s, %s, id=%s)", t.Type, t.Duration, t.ID)))
				pendingShown++
				if pendingShown == 5 {
					break
				}
			}
			if pendingShown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Roadmap complete"))
			}

			return nil
		},
	}

	return cmd
}
