package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/gridgen"
	"github.com/pdrpinto/gridpath/internal/scenario"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		opts := gridgen.DefaultOptions()
		opts.Width, _ = flags.GetInt("width")
		opts.Height, _ = flags.GetInt("height")
		opts.Clusters, _ = flags.GetInt("clusters")
		opts.Steps, _ = flags.GetInt("steps")
		opts.Density, _ = flags.GetFloat64("density")
		opts.Seed, _ = flags.GetInt64("seed")
		if !flags.Changed("seed") {
			opts.Seed = time.Now().UnixNano()
		}
		diagonalName, _ := flags.GetString("diagonal")
		diagonal, err := gridpath.ParseDiagonalMovement(diagonalName)
		if err != nil {
			return err
		}

		layout, err := gridgen.Generate(opts)
		if err != nil {
			return err
		}
		data, err := scenario.Marshal(scenario.FromCells(layout.Grid, layout.Start, layout.Goal, diagonal))
		if err != nil {
			return err
		}

		output, _ := flags.GetString("output")
		if output == "" || output == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", output, err)
		}
		logger.Info("scenario written", "file", output, "seed", opts.Seed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	defaults := gridgen.DefaultOptions()
	genCmd.Flags().IntP("width", "W", defaults.Width, "Grid width")
	genCmd.Flags().IntP("height", "H", defaults.Height, "Grid height")
	genCmd.Flags().Int("clusters", defaults.Clusters, "Number of wall clusters")
	genCmd.Flags().Int("steps", defaults.Steps, "Random walk length per cluster")
	genCmd.Flags().Float64("density", defaults.Density, "Wall probability per walk step")
	genCmd.Flags().Int64("seed", 0, "Random seed (default: current time)")
	genCmd.Flags().String("diagonal", "always", "Diagonal rule: always or no-corner-cutting")
	genCmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
}
