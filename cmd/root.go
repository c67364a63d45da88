package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "funda",
	Short: "Learning buddy for South African kids",
	Long:  "Funda Buddy — terminal learning companion for kids (grades 4-6): AI-generated quizzes across Mathematics, English FAL and Life Skills, with La-Mila cheering along.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}
