package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exploresCmd = &cobra.Command{
	Use:   "explores <model>",
	Short: "List the explores of a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		model, err := client.GetModel(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Model: %s", model.Name)
		if model.Label != "" {
			fmt.Printf(" (%s)", model.Label)
		}
		fmt.Println()
		for _, e := range model.Explores {
			if e.Hidden {
				continue
			}
			fmt.Printf("  %-40s %s\n", e.Name, e.Label)
			if e.Description != "" {
				fmt.Printf("      %s\n", e.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exploresCmd)
}
