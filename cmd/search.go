package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search stations by name",
	Long: `Search the directory and list every playable match.

Results are collected across up to 10 pages of 50 stations.

Example:
  radionet search rock antenne`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	res := s.client.Search(ctx, query)
	if err := checkStatus(res.Status, fmt.Sprintf("search %q", query)); err != nil {
		return err
	}

	printStations(cmd.OutOrStdout(), res.Value)
	return nil
}
