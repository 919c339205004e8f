package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/clout"
)

var (
	verbose   int
	quiet     bool
	silent    bool
	colorMode string
)

var rootCmd = &cobra.Command{
	Use:   "clout-demo",
	Short: "Demonstrates clout's leveled command-line output",
	Long: `clout-demo emits one message at every clout level so you can see how
verbosity and color settings interact.

Try it with different flags:
  clout-demo              Errors, warnings, and status messages
  clout-demo -v           Adds info messages
  clout-demo -vvv         Adds debug and trace messages
  clout-demo -q           Errors only
  clout-demo -s           Nothing at all
  clout-demo --color=never | cat    Plain output, suitable for pipes
`,
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		useColor, err := clout.ParseUseColor(colorMode)
		if err != nil {
			return err
		}
		return clout.Init().
			FromEnv().
			WithVerbose(verbose).
			WithQuiet(quiet).
			WithSilent(silent).
			WithUseColor(useColor).
			Done()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !quiet && !silent {
			if colorMode == "never" {
				figure.NewFigure("clout", "alligator2", true).Print()
			} else {
				figure.NewColorFigure("clout", "alligator2", "green", true).Print()
			}
		}

		clout.Errorf("an error: %d", 1)
		clout.Warnf("a warning: %d", 1+1)
		clout.Statusf("a normal message")
		clout.Infof("useful info")
		clout.Debugf("debug info")
		clout.Tracef("tracing")

		if err := pretendToWork(); err != nil {
			return err
		}

		clout.Statusf("done!")
		return clout.Shutdown()
	},
}

// pretendToWork simulates a long-running operation. The spinner only
// runs at the default verbosity; with -v or more, the step messages
// themselves show progress.
func pretendToWork() error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " pretending to work"

	if err := s.Color("cyan"); err != nil {
		// If we can't set the spinner color, just continue without it.
		clout.Debugf("failed to set spinner color: %v", err)
	}

	if verbose == 0 && !quiet && !silent {
		s.Start()
		defer s.Stop()
	}

	for step := 1; step <= 3; step++ {
		time.Sleep(300 * time.Millisecond)
		clout.Infof("work step %d of 3 complete", step)
	}
	return nil
}

func init() {
	rootCmd.Flags().CountVarP(&verbose, "verbose", "v", "increase output detail (-v, -vv, -vvv)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only show errors")
	rootCmd.Flags().BoolVarP(&silent, "silent", "s", false, "suppress all output, even errors")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "when to use color: auto, always, or never")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
