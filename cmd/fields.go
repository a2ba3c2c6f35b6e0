package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jkdabbert/app-data-dictionary/internal/lookml"
	"github.com/jkdabbert/app-data-dictionary/internal/summary"
)

var fieldsShowHidden bool

var fieldsCmd = &cobra.Command{
	Use:   "fields <model> <explore>",
	Short: "List an explore's dimensions and measures",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		explore, err := client.GetExplore(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Explore: %s", explore.Name)
		if explore.Label != "" {
			fmt.Printf(" (%s)", explore.Label)
		}
		fmt.Println()
		if explore.Description != "" {
			fmt.Println(explore.Description)
		}
		fmt.Println("\nDimensions:")
		printFields(explore, explore.Fields.Dimensions)
		fmt.Println("\nMeasures:")
		printFields(explore, explore.Fields.Measures)
		return nil
	},
}

func printFields(explore *lookml.Explore, fields []lookml.Field) {
	for _, f := range fields {
		if f.Hidden && !fieldsShowHidden {
			continue
		}
		var kinds []string
		if summary.CanComputeTopValues(explore, f) {
			kinds = append(kinds, "values")
		}
		if summary.CanComputeDistribution(f) {
			kinds = append(kinds, "distribution")
		}
		line := fmt.Sprintf("  %-40s %-10s %s", f.Name, f.Type, f.Label)
		if len(kinds) > 0 {
			line += "  [" + strings.Join(kinds, ", ") + "]"
		}
		fmt.Println(line)
		if f.Description != "" {
			fmt.Printf("      %s\n", f.Description)
		}
	}
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsShowHidden, "hidden", false, "include hidden fields")
	rootCmd.AddCommand(fieldsCmd)
}
