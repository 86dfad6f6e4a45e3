package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/fluix"
	"github.com/aretw0/fluix/internal/presentation/tui"
	"github.com/aretw0/fluix/pkg/domain"
	"github.com/aretw0/fluix/pkg/machine"
	"github.com/aretw0/fluix/pkg/ports"
	"github.com/aretw0/fluix/pkg/scheduler"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play a scripted toast lifecycle in the terminal",
	Long: `Runs a short script (show, replace, promise, error, dismiss, clear) against
a toaster and prints the toast list after every step.

By default time is simulated and the script finishes instantly; --realtime
waits for real.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		realtime, _ := cmd.Flags().GetBool("realtime")
		file, err := loadFile(cmd, "")
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		profile := termenv.Ascii
		var markdown func(string) (string, error)
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			profile = termenv.ColorProfile()
			markdown = tui.NewMarkdown()
		}

		tui.PrintBanner(out, profile)
		renderer := tui.New(tui.WithProfile(profile), tui.WithMarkdown(markdown))
		return runDemo(cmd.Context(), out, renderer, file.Config, realtime)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Bool("realtime", false, "Wait for real instead of simulating time")
}

// clock advances time for the demo: simulated or real.
type clock interface {
	ports.Scheduler
	wait(ctx context.Context, d time.Duration) error
}

type manualClock struct{ *scheduler.Manual }

func (c manualClock) wait(_ context.Context, d time.Duration) error {
	c.Advance(d)
	return nil
}

type realClock struct{ scheduler.Realtime }

func (realClock) wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

type demoStep struct {
	title string
	run   func(*fluix.Toaster)
	wait  time.Duration
}

func runDemo(ctx context.Context, w io.Writer, r *tui.Renderer, cfg domain.Config, realtime bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var c clock = manualClock{scheduler.NewManual()}
	if realtime {
		c = realClock{scheduler.NewRealtime()}
	}

	t := fluix.New(fluix.WithMachineOptions(machine.WithScheduler(c), machine.WithConfig(cfg)))
	defer t.Destroy()

	release := make(chan struct{})
	var upload *fluix.Future[int]

	steps := []demoStep{
		{
			title: "show a toast with the default id",
			run: func(t *fluix.Toaster) {
				t.Success(domain.Options{Title: "Saved!", Description: "Your **draft** is stored."})
			},
			wait: 800 * time.Millisecond,
		},
		{
			title: "show again: the same slot is replaced",
			run: func(t *fluix.Toaster) {
				t.Info(domain.Options{Title: "Updated"})
			},
			wait: 800 * time.Millisecond,
		},
		{
			title: "start an upload bound to a loading toast",
			run: func(t *fluix.Toaster) {
				upload = fluix.Promise(ctx, t, func(context.Context) (int, error) {
					<-release
					return 3, nil
				}, fluix.PromiseOptions[int]{
					Loading: domain.Options{ID: "upload", Title: "Uploading files"},
					Success: func(n int) domain.Options {
						return domain.Options{Title: fmt.Sprintf("Uploaded %d files", n)}
					},
					Position: domain.PositionBottomRight,
				})
			},
			wait: 1200 * time.Millisecond,
		},
		{
			title: "the upload settles",
			run: func(*fluix.Toaster) {
				close(release)
				<-upload.Done()
			},
			wait: 500 * time.Millisecond,
		},
		{
			title: "an error with an action button",
			run: func(t *fluix.Toaster) {
				t.Error(domain.Options{
					ID:       "sync",
					Title:    "Sync failed",
					Position: domain.PositionBottomLeft,
					Button:   &domain.Button{Title: "Retry"},
					Duration: domain.DurationOf(domain.Persistent),
				})
			},
			wait: 800 * time.Millisecond,
		},
		{
			title: "dismiss the error",
			run: func(t *fluix.Toaster) {
				t.Dismiss("sync")
			},
			wait: domain.ExitDuration,
		},
		{
			title: "after the exit animation",
			run:   func(*fluix.Toaster) {},
		},
		{
			title: "clear everything",
			run: func(t *fluix.Toaster) {
				t.Clear()
			},
		},
	}

	for i, step := range steps {
		step.run(t)
		fmt.Fprintf(w, "── %d. %s ──\n%s\n", i+1, step.title, r.Render(t.Snapshot()))
		if step.wait > 0 {
			if err := c.wait(ctx, step.wait); err != nil {
				return err
			}
		}
	}
	return nil
}
