package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/skillfield"
)

//go:embed data/skills.json
var sampleData embed.FS

const sampleDataPath = "data/skills.json"

// options holds flags shared by every subcommand.
type options struct {
	verbose    bool
	configPath string
	dataPath   string
	category   string
	seed       uint64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "skillfield",
		Short:        "Scatter skills across a canvas and explore them by hovering",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&opts.configPath, "config", "", "TOML config file (defaults are used when empty)")
	pf.StringVar(&opts.dataPath, "data", "", "skills JSON file (embedded sample when empty)")
	pf.StringVar(&opts.category, "category", "all", "only show skills in this category")
	pf.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newLayoutCmd(opts))
	return root
}

// loadConfig reads --config and applies flag overrides.
func (o *options) loadConfig(cmd *cobra.Command) (skillfield.Config, error) {
	cfg := skillfield.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = skillfield.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	return cfg, nil
}

// loadSkills reads --data (or the embedded sample) and applies --category.
func (o *options) loadSkills() (*skillfield.SkillSet, []skillfield.Skill, error) {
	var (
		set *skillfield.SkillSet
		err error
	)
	if o.dataPath == "" {
		set, err = skillfield.LoadSkillSet(sampleData, sampleDataPath)
	} else {
		set, err = skillfield.LoadSkillSet(os.DirFS(filepath.Dir(o.dataPath)), filepath.Base(o.dataPath))
	}
	if err != nil {
		return nil, nil, err
	}
	skills := set.Filter(o.category)
	if len(skills) == 0 {
		return nil, nil, fmt.Errorf("category %q: %w", o.category, skillfield.ErrNoSkills)
	}
	return set, skills, nil
}
