package main

import (
	"fmt"
	"os"

	"doom-fire/internal/config"
	"doom-fire/internal/fire"
	"doom-fire/internal/host"
	"doom-fire/internal/render"

	"github.com/spf13/cobra"
)

func newRecordCmd(cfg *config.Config) *cobra.Command {
	var (
		ticks int
		out   string
		zoom  int
		loops int
	)
	cmd := &cobra.Command{
		Use:   "record",
		Short: "render a scripted stroke to an animated gif",
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
			rec := render.NewRecorder(zoom, cfg.Fire.TickRate)
			engine, err := fire.New(cfg.Fire, loop, rec, logger)
			if err != nil {
				return err
			}
			defer engine.Destroy()

			period := max(ticks/max(loops, 1), 1)
			host.Drive(engine, loop, ticks, host.FigureEight(cfg.Fire.Width, cfg.Fire.Height, period), nil)

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := rec.Encode(f); err != nil {
				f.Close()
				return fmt.Errorf("encode %s: %w", out, err)
			}
			if err := f.Close(); err != nil {
				return err
			}
			logger.Info("recorded", "out", out, "frames", rec.Frames(), "ticks", ticks)
			fmt.Printf("wrote %d frames to %s\n", rec.Frames(), out)
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 150, "number of simulation ticks to record")
	cmd.Flags().StringVar(&out, "out", "fire.gif", "output gif path")
	cmd.Flags().IntVar(&zoom, "zoom", 2, "gif pixel scale")
	cmd.Flags().IntVar(&loops, "loops", 2, "figure-eight loops traced during the recording")
	return cmd
}
