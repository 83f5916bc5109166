package main

import (
	"fmt"
	"os"
	"time"

	"doom-fire/internal/config"
	"doom-fire/internal/fire"
	"doom-fire/internal/host"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

type discardSurface struct{}

func (discardSurface) Present([]byte, int, int) {}

func newProfileCmd(cfg *config.Config) *cobra.Command {
	var (
		ticks  int
		stroke bool
	)
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "run headless and plot mean heat per tick",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ticks <= 0 {
				return fmt.Errorf("ticks must be positive, got %d", ticks)
			}
			logger, closeLog, err := newLogger(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			loop := host.NewLoop()
			engine, err := fire.New(cfg.Fire, loop, discardSurface{}, logger)
			if err != nil {
				return err
			}
			defer engine.Destroy()

			var script host.Script
			if stroke {
				script = host.FigureEight(cfg.Fire.Width, cfg.Fire.Height, max(ticks/2, 1))
			}
			means := make([]float64, 0, ticks)
			peak := 0.0
			start := time.Now()
			host.Drive(engine, loop, ticks, script, func(int) {
				m := engine.Grid().Mean()
				means = append(means, m)
				peak = max(peak, m)
			})
			elapsed := time.Since(start)

			fmt.Println(headerStyle.Render(fmt.Sprintf("doom-fire %dx%d seed %d", cfg.Fire.Width, cfg.Fire.Height, cfg.Fire.Seed)))
			fmt.Println(asciigraph.Plot(means,
				asciigraph.Height(12),
				asciigraph.Width(80),
				asciigraph.Caption("mean heat per tick"),
			))
			fmt.Println()
			row := func(label, value string) {
				fmt.Println(labelStyle.Render(label) + valueStyle.Render(value))
			}
			row("ticks", fmt.Sprint(ticks))
			row("final mean", fmt.Sprintf("%.3f", means[len(means)-1]))
			row("peak mean", fmt.Sprintf("%.3f", peak))
			row("elapsed", elapsed.Round(time.Microsecond).String())
			row("ticks/sec", fmt.Sprintf("%.0f", float64(ticks)/max(elapsed.Seconds(), 1e-9)))
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 300, "number of simulation ticks")
	cmd.Flags().BoolVar(&stroke, "stroke", true, "trace a figure-eight stroke while profiling")
	return cmd
}
