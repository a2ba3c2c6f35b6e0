package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkdabbert/app-data-dictionary/internal/render"
	"github.com/jkdabbert/app-data-dictionary/internal/summary"
)

var summarizeKind string

var summarizeCmd = &cobra.Command{
	Use:   "summarize <model> <explore> <field>",
	Short: "Summarize one field of an explore",
	Long: `Summarize computes quick statistics for a single field: a top-values
frequency table for dimensions with a companion count measure, or a
min/max/average distribution with a histogram for numeric dimensions.
Without --kind, the best supported summary for the field is picked.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, exploreName, fieldName := args[0], args[1], args[2]
		client, err := apiClient()
		if err != nil {
			return err
		}
		ctx := context.Background()
		explore, err := client.GetExplore(ctx, model, exploreName)
		if err != nil {
			return err
		}
		field, ok := explore.Field(fieldName)
		if !ok {
			return fmt.Errorf("field %q not found in explore %s", fieldName, exploreName)
		}

		var kind summary.Kind
		if summarizeKind != "" {
			kind, err = summary.ParseKind(summarizeKind)
			if err != nil {
				return err
			}
		} else {
			switch {
			case summary.CanComputeDistribution(field):
				kind = summary.KindDistribution
			case summary.CanComputeTopValues(explore, field):
				kind = summary.KindValues
			default:
				return fmt.Errorf("no summary is computable for %s (need a numeric dimension or a dimension with a companion count measure)", fieldName)
			}
		}

		svc := summary.NewService(client)
		res, err := svc.Summarize(ctx, explore, summary.Request{
			Model:   model,
			Explore: exploreName,
			Field:   fieldName,
			Kind:    kind,
		})
		if err != nil {
			return err
		}
		fmt.Print(render.Table(res))
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeKind, "kind", "", "summary kind: values|distribution (default: auto)")
	rootCmd.AddCommand(summarizeCmd)
}
