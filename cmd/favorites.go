package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/jfmyers9/radionet/internal/bookmarks"
	"github.com/spf13/cobra"
)

// favoritesCmd represents the favorites command
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorite stations",
	Long: `Resolve your favorite stations and list the playable ones.

Favorites come from the "favorites" list in config.yaml followed by the
ids added with "radionet favorites add". Each id or slug is looked up
directly; when that fails the best search match is used instead.`,
	Args: cobra.NoArgs,
	RunE: runFavorites,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <id-or-slug>...",
	Short: "Add stations to your favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-slug>...",
	Short: "Remove stations from your favorites",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFavoritesRemove,
}

var favoritesIDsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Print the favorite ids without resolving them",
	Args:  cobra.NoArgs,
	RunE:  runFavoritesIDs,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesIDsCmd)
}

// openBookmarks opens the bookmark store in the configured data directory.
func openBookmarks(s *session) (*bookmarks.Store, error) {
	path, err := s.cfg.BookmarksPath()
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store, err := bookmarks.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bookmarks: %w", err)
	}

	s.logger.Debug().Str("path", path).Msg("Opened bookmarks")
	return store, nil
}

// favoriteIDs merges the configured favorites with the stored bookmarks,
// keeping the first occurrence of each id.
func favoriteIDs(ctx context.Context, s *session) ([]string, error) {
	store, err := openBookmarks(s)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	stored, err := store.Identifiers(ctx)
	if err != nil {
		return nil, err
	}

	ids := slices.Clone(s.cfg.Favorites)
	for _, id := range stored {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func runFavorites(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	ids, err := favoriteIDs(ctx, s)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No favorites yet. Add one with: radionet favorites add <id-or-slug>")
		return nil
	}

	s.client.SetFavorites(ids)
	res := s.client.ResolveFavorites(ctx)
	if err := checkStatus(res.Status, "favorites"); err != nil {
		return err
	}

	printStations(cmd.OutOrStdout(), res.Value)
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	return editBookmarks(cmd, args, func(ctx context.Context, store *bookmarks.Store, id string) (string, error) {
		added, err := store.Add(ctx, id)
		if err != nil {
			return "", err
		}
		if !added {
			return "already a favorite", nil
		}
		return "added", nil
	})
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	return editBookmarks(cmd, args, func(ctx context.Context, store *bookmarks.Store, id string) (string, error) {
		removed, err := store.Remove(ctx, id)
		if err != nil {
			return "", err
		}
		if !removed {
			return "not a favorite", nil
		}
		return "removed", nil
	})
}

func editBookmarks(cmd *cobra.Command, ids []string, edit func(context.Context, *bookmarks.Store, string) (string, error)) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	store, err := openBookmarks(s)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, id := range ids {
		outcome, err := edit(cmd.Context(), store, id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", id, outcome)
	}
	return nil
}

func runFavoritesIDs(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	ids, err := favoriteIDs(cmd.Context(), s)
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	return nil
}
