package main

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/statline/pkg/config"
	"github.com/arthur-debert/statline/pkg/logging"
	"github.com/arthur-debert/statline/pkg/statline"
	"github.com/arthur-debert/statline/pkg/terminal"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

func configFrom(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey{}).(*config.Config)
	return cfg
}

var (
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	percentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// workerStatus is the demo's renderer. It keeps its own lock, the way
// a real producer would, and is read by the drawer's loop while the
// worker updates it.
type workerStatus struct {
	mu      sync.Mutex
	name    string
	percent int
	frame   int
}

func (w *workerStatus) Render(size terminal.Size) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.frame = (w.frame + 1) % len(spinnerFrames)
	line := fmt.Sprintf("%s %s %s",
		spinnerStyle.Render(spinnerFrames[w.frame]),
		nameStyle.Render(w.name),
		percentStyle.Render(fmt.Sprintf("%d%%", w.percent)))

	// Never draw wider than the terminal; the region writer would
	// account for the wrap, but a clipped line reads better.
	if size.Cols > 0 && len(w.name)+10 > int(size.Cols) {
		n := int(size.Cols) / 2
		if n > len(w.name) {
			n = len(w.name)
		}
		return nameStyle.Render(w.name[:n])
	}
	return line
}

func (w *workerStatus) setPercent(p int) {
	w.mu.Lock()
	w.percent = p
	w.mu.Unlock()
}

func newDemoCmd() *cobra.Command {
	var (
		workers    int
		duration   time.Duration
		hideDuring time.Duration
	)

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long:  MsgDemoLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFrom(cmd.Context())
			opts := statline.Options{}
			if cfg != nil {
				opts.TickInterval = cfg.TickInterval
				opts.ResizeDelay = cfg.ResizeDelay
			}
			return runDemo(statline.New(opts), workers, duration, hideDuring)
		},
	}

	demoCmd.Flags().IntVar(&workers, "workers", 4, MsgFlagWorkers)
	demoCmd.Flags().DurationVar(&duration, "duration", 5*time.Second, MsgFlagDuration)
	demoCmd.Flags().DurationVar(&hideDuring, "hide-during", 0, MsgFlagHideDuring)

	return demoCmd
}

func runDemo(drawer *statline.Drawer, workers int, duration, hideDuring time.Duration) error {
	logger := logging.GetLogger("demo")

	if !drawer.IsSupported() {
		logger.Warn().Msg("status lines unsupported here, running silently")
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			status := &workerStatus{name: fmt.Sprintf("worker-%d", i)}
			guard := drawer.AddEntry(status)
			defer guard.Close()

			// Stagger completion so lines disappear one by one.
			total := duration + time.Duration(rand.Intn(1500))*time.Millisecond
			steps := 50
			for s := 0; s <= steps; s++ {
				status.setPercent(s * 100 / steps)
				if s%10 == 0 {
					logger.Info().Str("worker", status.name).Int("percent", s*100/steps).Msg("progress")
				}
				time.Sleep(total / time.Duration(steps))
			}
			logger.Info().Str("worker", status.name).Msg("done")
		}(i)
	}

	if hideDuring > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(duration / 3)
			logger.Info().Dur("for", hideDuring).Msg("hiding status region")
			drawer.Hide()
			time.Sleep(hideDuring)
			drawer.Show()
			logger.Info().Msg("status region restored")
		}()
	}

	wg.Wait()
	return nil
}
