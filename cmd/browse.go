package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var browsePage int

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse <tag-type> <slug>",
	Short: "List one page of stations carrying a tag",
	Long: `List one page (50 stations) of a tag category.

Example:
  radionet browse genres rock --page 2`,
	Args: cobra.ExactArgs(2),
	RunE: runBrowse,
}

// categoryCmd represents the category command
var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "List one page of a simple category",
	Long: `List one page (50 stations) of a simple category such as "local" or "top".

Example:
  radionet category local --region de`,
	Args: cobra.ExactArgs(1),
	RunE: runCategory,
}

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages <tag-type> [slug]",
	Short: "Print the number of pages of a category",
	Long: `Print the number of 50-station pages of a category.

With a slug the first argument is a tag type ("pages genres rock"),
without one it names a simple category ("pages local").`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPages,
}

func init() {
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(pagesCmd)

	browseCmd.Flags().IntVarP(&browsePage, "page", "p", 1, "Page number, starting at 1")
	categoryCmd.Flags().IntVarP(&browsePage, "page", "p", 1, "Page number, starting at 1")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	tagType, slug := args[0], args[1]
	if err := validTagType(tagType); err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	res := s.client.ListCategory(ctx, tagType, slug, browsePage)
	if err := checkStatus(res.Status, tagType+"/"+slug); err != nil {
		return err
	}

	printStations(cmd.OutOrStdout(), res.Value)
	return nil
}

func runCategory(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	res := s.client.ListSimpleCategory(ctx, args[0], browsePage)
	if err := checkStatus(res.Status, args[0]); err != nil {
		return err
	}

	printStations(cmd.OutOrStdout(), res.Value)
	return nil
}

func runPages(cmd *cobra.Command, args []string) error {
	if len(args) == 2 {
		if err := validTagType(args[0]); err != nil {
			return err
		}
	}

	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	var pages int
	if len(args) == 2 {
		res := s.client.CategoryPageCount(ctx, args[0], args[1])
		if err := checkStatus(res.Status, args[0]+"/"+args[1]); err != nil {
			return err
		}
		pages = res.Value
	} else {
		res := s.client.SimpleCategoryPageCount(ctx, args[0])
		if err := checkStatus(res.Status, args[0]); err != nil {
			return err
		}
		pages = res.Value
	}

	fmt.Fprintln(cmd.OutOrStdout(), pages)
	return nil
}
