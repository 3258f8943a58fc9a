package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var tagsMinCount int

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags <type>",
	Short: "List the values of a tag dimension",
	Long: `List the values of a tag dimension with their station counts.

Tag types: cities, countries, genres, languages, topics

Example:
  radionet tags genres --min-count 100`,
	Args: cobra.ExactArgs(1),
	RunE: runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)

	tagsCmd.Flags().IntVar(&tagsMinCount, "min-count", 0, "Only list values with at least this many stations")
}

func runTags(cmd *cobra.Command, args []string) error {
	tagType := args[0]
	if err := validTagType(tagType); err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	res := s.client.ListTagValues(ctx, tagType, tagsMinCount)
	if err := checkStatus(res.Status, tagType); err != nil {
		return err
	}

	printTags(cmd.OutOrStdout(), res.Value)
	return nil
}
