// Package main is a pizza order form built from three swipe selectors. It
// runs full-screen with SDL or inside a terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/carousel"
	"github.com/BrandonKowalski/swipeselector/pkg/swipeselector/tui"
)

var (
	dataDir          string
	stringFiles      []string
	languages        []string
	stateDir         string
	logLevel         string
	logPath          string
	requireSelection bool

	flipFaceButtons bool
	controllerFile  string
	handheld        bool
)

var rootCmd = &cobra.Command{
	Use:   "swipeselector-demo",
	Short: "Order a pizza with swipe selectors",
	Long: `Order a pizza by swiping through size, toppings and delivery.

Without --data the built-in menu is used. With --data the directory must hold
size.toml, toppings.toml and delivery.toml selector settings, each naming its
item list. Item titles written as @string/<id> are looked up in the files
given with --strings.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logPath != "" {
			swipeselector.SetLogPath(logPath)
		}
		swipeselector.SetRawLogLevel(logLevel)
	},
}

var sdlCmd = &cobra.Command{
	Use:   "sdl",
	Short: "Run the order form full-screen with SDL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, resolver, err := loadMenu()
		if err != nil {
			return err
		}

		if err := swipeselector.Init(swipeselector.Options{
			WindowTitle:          "Pizza",
			IsCannoli:            true,
			IsHandheld:           handheld,
			ControllerConfigFile: controllerFile,
			LogPath:              logPath,
			LogLevel:             logLevel,
			FlipFaceButtons:      flipFaceButtons,
		}); err != nil {
			return err
		}
		defer swipeselector.Close()

		return order(cmd.OutOrStdout(), steps, sdlSelect(resolver))
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the order form in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("tui needs an interactive terminal")
		}
		swipeselector.SetLogOutput(io.Discard)

		steps, resolver, err := loadMenu()
		if err != nil {
			return err
		}
		defer swipeselector.Close()

		return order(cmd.OutOrStdout(), steps, tuiSelect(resolver))
	},
}

// loadMenu returns the order steps and the string catalog for their items.
func loadMenu() ([]step, carousel.Resolver, error) {
	catalog := carousel.NewCatalog(language.English)
	for _, path := range stringFiles {
		if err := catalog.LoadFile(path); err != nil {
			return nil, nil, err
		}
	}
	if len(languages) > 0 {
		catalog.SetLanguages(languages...)
	}

	if dataDir == "" {
		return builtinSteps(), catalog, nil
	}
	steps, err := loadSteps(dataDir)
	if err != nil {
		return nil, nil, err
	}
	return steps, catalog, nil
}

func order(out io.Writer, steps []step, show selectFunc) error {
	logger := swipeselector.GetLogger()
	store := newStateStore(stateDir, logger)

	result, err := runOrder(steps, show, store)
	if err != nil {
		logger.Error("Order failed", "error", err)
		if swipeselector.IsSelectorError(err) && stateDir != "" {
			return fmt.Errorf("%w (remove %s to start over)", err, stateDir)
		}
		return err
	}
	if result.Cancelled {
		fmt.Fprintln(out, "Order cancelled.")
		return nil
	}

	logger.Info("Order placed", "steps", len(result.Choices))
	fmt.Fprintln(out, summary(steps, result.Choices))
	return nil
}

func sdlSelect(resolver carousel.Resolver) selectFunc {
	return func(s step, resume *carousel.SavedState) (stepResult, error) {
		settings := swipeselector.DefaultSwipeSelectSettings()
		settings.Selector = s.Settings
		settings.Resolver = resolver
		settings.InitialState = resume
		settings.RequireSelection = requireSelection

		res, err := swipeselector.SwipeSelect(s.Title, s.Items, settings)
		if swipeselector.IsCancelled(err) {
			return stepResult{Back: true}, nil
		}
		if err != nil {
			return stepResult{}, err
		}
		return stepResult{Item: res.Item, State: res.State}, nil
	}
}

func tuiSelect(resolver carousel.Resolver) selectFunc {
	return func(s step, resume *carousel.SavedState) (stepResult, error) {
		res, err := tui.Run(s.Title, s.Items, tui.Options{
			Settings:         s.Settings,
			Resolver:         resolver,
			InitialState:     resume,
			RequireSelection: requireSelection,
		})
		if errors.Is(err, tui.ErrCancelled) {
			return stepResult{Back: true}, nil
		}
		if err != nil {
			return stepResult{}, err
		}
		return stepResult{Item: res.Item, State: res.State}, nil
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&dataDir, "data", "", "directory holding the step settings files")
	flags.StringSliceVar(&stringFiles, "strings", nil, "string message files (strings.en.toml, strings.de.yaml)")
	flags.StringSliceVar(&languages, "lang", nil, "preferred languages, most preferred first")
	flags.StringVar(&stateDir, "state-dir", "", "directory that remembers each step between runs")
	flags.StringVar(&logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	flags.StringVar(&logPath, "log-path", "", "log file")
	flags.BoolVar(&requireSelection, "require-selection", false, "ignore confirm on a placeholder")

	sdlFlags := sdlCmd.Flags()
	sdlFlags.BoolVar(&flipFaceButtons, "flip", false, "map face buttons directly (A=A, B=B)")
	sdlFlags.StringVar(&controllerFile, "controller-config", "", "TOML controller mapping")
	sdlFlags.BoolVar(&handheld, "handheld", false, "handle the power button of TrimUI handhelds")

	rootCmd.AddCommand(sdlCmd)
	rootCmd.AddCommand(tuiCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
