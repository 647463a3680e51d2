// Command gonebody is the host process around the execution core: it loads
// a ROM, wires up a gbcore.Console, and either launches a windowed session
// or drops into the read-only inspector. The core has no process surface
// of its own, so this host supplies one.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"gonebody/gbcore"
	"gonebody/inspector"
	"gonebody/video"
)

func main() {
	var headless bool
	var debug bool
	var scale int

	root := &cobra.Command{
		Use:   "gonebody <rom>",
		Short: "gonebody is a host around an LR35902 execution core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("gonebody: reading ROM: %w", err)
			}

			var sink video.Sink = video.NullSink{}
			if !headless {
				sink = video.NewEbitenSink(scale)
			}

			console, err := gbcore.New(rom, sink)
			if err != nil {
				return fmt.Errorf("gonebody: %w", err)
			}

			console.Launch()
			defer console.Stop()

			if debug {
				return inspector.Run(console)
			}

			if runner, ok := sink.(video.Runner); ok {
				runErr := runner.Run()
				if stopErr := console.Stop(); stopErr != nil && runErr == nil {
					runErr = stopErr
				}
				return runErr
			}

			waitForInterrupt()
			return console.Stop()
		},
	}

	root.Flags().BoolVar(&headless, "headless", false, "run without a video window")
	root.Flags().BoolVar(&debug, "debug", false, "launch the register/memory inspector instead of a video window")
	root.Flags().IntVar(&scale, "scale", 2, "integer window scale factor (windowed mode only)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func waitForInterrupt() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
