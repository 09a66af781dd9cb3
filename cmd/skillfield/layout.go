package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/phanxgames/skillfield"
)

func newLayoutCmd(opts *options) *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print a headless placement report",
		Long: `Run placement for a viewport without opening a window and print
where every skill landed. Items that could not be placed within the
attempt budget are flagged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, opts, width, height)
		},
	}
	cmd.Flags().Float64Var(&width, "width", 1000, "viewport width")
	cmd.Flags().Float64Var(&height, "height", 800, "viewport height")
	return cmd
}

func runLayout(cmd *cobra.Command, opts *options, width, height float64) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	_, skills, err := opts.loadSkills()
	if err != nil {
		return err
	}
	engine, err := skillfield.NewEngine(skills, cfg, skillfield.Options{Logger: logger.WithPrefix("engine")})
	if err != nil {
		return err
	}
	defer engine.Close()

	res := engine.Resize(width, height, 1)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderLayoutReport(engine.Viewport(), engine.Items(), res))
	return err
}

func renderLayoutReport(vp skillfield.Viewport, items []*skillfield.Item, res skillfield.PlacementResult) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Layout %gx%g", vp.Width, vp.Height)))
	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("padding %g, min distance %g", vp.Bounds().X, vp.MinDistance)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		status := "ok"
		if it.PlacementExhausted {
			status = "crowded"
		}
		rows = append(rows, []string{
			strconv.Itoa(it.Index),
			it.ID,
			it.Skill.Name,
			fmt.Sprintf("%.1f", it.X),
			fmt.Sprintf("%.1f", it.Y),
			fmt.Sprintf("%.1f", it.BaseSize),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Name", "X", "Y", "Size", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if col == 6 {
				if row < len(items) && items[row].PlacementExhausted {
					return styleWarning.Padding(0, 1)
				}
				return styleSuccess.Padding(0, 1)
			}
			return styleCell
		})
	b.WriteString(t.Render())
	b.WriteString("\n")

	summary := fmt.Sprintf("%d skills, %s placed, %s exhausted, %s attempts",
		len(items),
		styleNumber.Render(strconv.Itoa(res.Placed)),
		styleNumber.Render(strconv.Itoa(res.Exhausted)),
		styleNumber.Render(strconv.Itoa(res.Attempts)))
	b.WriteString(summary)
	return b.String()
}
