package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/radionet/internal/directory"
	"github.com/spf13/cobra"
)

// stationCmd represents the station command
var stationCmd = &cobra.Command{
	Use:   "station <id-or-slug>",
	Short: "Show the details of a station",
	Args:  cobra.ExactArgs(1),
	RunE:  runStation,
}

// streamCmd represents the stream command
var streamCmd = &cobra.Command{
	Use:   "stream <id>",
	Short: "Print the stream URL of a station",
	Long: `Print the stream URL of a station, ready to hand to a player.

Example:
  mpv "$(radionet stream dancefm)"

Exit codes:
  0 - Stream URL printed
  1 - Station unknown, has no stream, or the directory is unavailable`,
	Args: cobra.ExactArgs(1),
	RunE: runStream,
}

func init() {
	rootCmd.AddCommand(stationCmd)
	rootCmd.AddCommand(streamCmd)
}

func runStation(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	res := s.client.StationByID(ctx, args[0])
	if res.Status == directory.StatusNotFound {
		res = s.client.StationBySlug(ctx, args[0])
	}
	if err := checkStatus(res.Status, fmt.Sprintf("station %q", args[0])); err != nil {
		return err
	}

	printStation(cmd.OutOrStdout(), res.Value)
	return nil
}

func runStream(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
	defer cancel()

	res := s.client.StreamURL(ctx, args[0])
	if err := checkStatus(res.Status, fmt.Sprintf("stream of %q", args[0])); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Value)
	return nil
}
