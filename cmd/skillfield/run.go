package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/skillfield"
	"github.com/phanxgames/skillfield/host"
)

type runOptions struct {
	width, height int
	assets        string
	defaultIcon   string
	play          bool
	script        string
	screenshots   string
	exitAfter     bool
	fps           bool
	background    string
}

func newRunCmd(opts *options) *cobra.Command {
	ro := runOptions{width: 1000, height: 800}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive skill field window",
		Long: `Open a window with every skill scattered across it.

Hover an icon to focus it. Press P to toggle play mode, where focusing an
item tints and swells its neighbors for a moment. Escape quits.

A JSON test script (--script) can drive the pointer and capture
screenshots for automated visual checks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, opts, ro)
		},
	}

	f := cmd.Flags()
	f.IntVar(&ro.width, "width", ro.width, "window width")
	f.IntVar(&ro.height, "height", ro.height, "window height")
	f.StringVar(&ro.assets, "assets", "", "directory icon paths are resolved against")
	f.StringVar(&ro.defaultIcon, "default-icon", "", "icon for skills without one")
	f.BoolVar(&ro.play, "play", false, "start in play mode")
	f.StringVar(&ro.script, "script", "", "JSON test script to run")
	f.StringVar(&ro.screenshots, "screenshots", "screenshots", "directory for script screenshots")
	f.BoolVar(&ro.exitAfter, "exit-after-script", false, "quit once the test script finishes")
	f.BoolVar(&ro.fps, "fps", false, "show the FPS overlay")
	f.StringVar(&ro.background, "background", "#FFFFFF", "background color (#RRGGBB)")
	return cmd
}

func runWindow(cmd *cobra.Command, opts *options, ro runOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("play") {
		cfg.PlayMode = ro.play
	}
	bg, err := skillfield.ParseHexColor(ro.background)
	if err != nil {
		return err
	}
	set, skills, err := opts.loadSkills()
	if err != nil {
		return err
	}

	engine, err := skillfield.NewEngine(skills, cfg, skillfield.Options{Logger: logger.WithPrefix("engine")})
	if err != nil {
		return err
	}
	engine.SetDebugMode(opts.verbose)
	engine.OnClick(func(fc skillfield.FocusContext) {
		s := fc.Item.Skill
		logger.Info("skill", "name", s.Name, "category", set.CategoryName(s.Category),
			"level", fmt.Sprintf("%d/%d", s.Level, s.MaxLevel))
	})

	var icons map[string]*ebiten.Image
	if ro.assets != "" {
		icons = host.LoadIcons(os.DirFS(ro.assets), engine.Items(), ro.defaultIcon, logger)
	}

	var runner *host.TestRunner
	if ro.script != "" {
		data, err := os.ReadFile(ro.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		if runner, err = host.LoadTestScript(data); err != nil {
			return err
		}
	}

	logger.Info("starting", "skills", len(skills), "play", cfg.PlayMode)
	return host.Run(engine, host.RunConfig{
		Title:              "skillfield",
		Width:              ro.width,
		Height:             ro.height,
		ShowFPS:            ro.fps,
		ClearColor:         bg,
		Icons:              icons,
		ScreenshotDir:      ro.screenshots,
		Script:             runner,
		ExitWhenScriptDone: ro.exitAfter,
		Seed:               cfg.Seed,
		Logger:             logger.WithPrefix("host"),
		Context:            ctx,
	})
}
