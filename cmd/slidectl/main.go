package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag  string
	userFlag string
	rootCmd  = &cobra.Command{
		Use:   "slidectl",
		Short: "CLI client for the slide service REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Slide service base URL")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User ID (required)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the user's presentations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runList(apiFlag, userFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get <presentation-id>",
		Short: "Fetch one presentation document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runGet(apiFlag, userFlag, args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(getCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <presentation-id>",
		Short: "Delete a presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			return runDelete(apiFlag, userFlag, args[0], os.Stdout)
		},
	}
	rootCmd.AddCommand(deleteCmd)

	exportCmd := &cobra.Command{
		Use:   "export <presentation-id>",
		Short: "Export a presentation as a standalone HTML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			return runExport(apiFlag, userFlag, args[0], format, output, os.Stdout)
		},
	}
	exportCmd.Flags().StringP("format", "f", "player", "Export format (player, print)")
	exportCmd.Flags().StringP("output", "o", "", "Output file (defaults to the server-suggested name)")
	rootCmd.AddCommand(exportCmd)

	generateCmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate a whole presentation from a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if userFlag == "" {
				return fmt.Errorf("--user required")
			}
			audience, _ := cmd.Flags().GetString("audience")
			tone, _ := cmd.Flags().GetString("tone")
			return runGenerate(apiFlag, userFlag, args[0], audience, tone, os.Stdout)
		},
	}
	generateCmd.Flags().String("audience", "", "Target audience")
	generateCmd.Flags().String("tone", "", "Presentation tone")
	rootCmd.AddCommand(generateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
