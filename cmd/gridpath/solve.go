package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/scenario"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a path for a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		render, _ := cmd.Flags().GetBool("render")

		sc, err := scenario.Load(file)
		if err != nil {
			return err
		}
		built, err := sc.Build()
		if err != nil {
			return err
		}

		finder := gridpath.New(
			gridpath.WithDiagonalMovement(built.Diagonal),
			gridpath.WithObserver(gridpath.LogObserver(logger)),
		)
		result, err := finder.FindPath(cmd.Context(), built.Grid, built.Start, built.Goal)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !result.Found {
			fmt.Fprintf(out, "no path from %v to %v (%d nodes expanded)\n", built.Start, built.Goal, result.ExpandedNodes)
		} else {
			steps := make([]string, len(result.Path))
			for i, c := range result.Path {
				steps[i] = c.String()
			}
			fmt.Fprintf(out, "cost %d, %d cells, %d nodes expanded\n", result.TotalCost, len(result.Path), result.ExpandedNodes)
			fmt.Fprintln(out, strings.Join(steps, " "))
		}
		if render {
			fmt.Fprint(out, scenario.Render(built.Grid, result.Path, built.Start, built.Goal))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("file", "f", "scenario.yaml", "Scenario file")
	solveCmd.Flags().BoolP("render", "r", false, "Print the grid with the path drawn on it")
}
