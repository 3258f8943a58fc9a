package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/radionet/internal/directory"
	"github.com/jfmyers9/radionet/pkg/radionet"
	"github.com/mattn/go-runewidth"
)

// Column widths for station listings
const (
	idWidth       = 24
	nameWidth     = 32
	locationWidth = 24
)

// printStations writes one aligned line per station.
func printStations(w io.Writer, stations []*directory.Station) {
	for _, s := range stations {
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			padToWidth(s.ID, idWidth),
			padToWidth(s.Name, nameWidth),
			padToWidth(location(s), locationWidth),
			s.GenreList(),
		)
	}
}

// printStation writes every field of a single station.
func printStation(w io.Writer, s *directory.Station) {
	fields := []struct {
		label string
		value string
	}{
		{"ID", s.ID},
		{"Slug", s.Slug},
		{"Name", s.Name},
		{"Location", location(s)},
		{"Genres", s.GenreList()},
		{"Description", s.Description},
		{"Stream", s.StreamURL},
		{"Logo", firstNonEmpty(s.ImageLarge, s.ImageMedium, s.ImageTiny)},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", padToWidth(f.label+":", 12), f.value)
	}
}

// printTags writes one aligned line per tag value.
func printTags(w io.Writer, tags []radionet.Tag) {
	for _, t := range tags {
		fmt.Fprintf(w, "%s  %s  %d\n",
			padToWidth(t.Slug, idWidth),
			padToWidth(t.Name, nameWidth),
			t.Count,
		)
	}
}

func location(s *directory.Station) string {
	switch {
	case s.City != "" && s.Country != "":
		return s.City + ", " + s.Country
	case s.City != "":
		return s.City
	default:
		return s.Country
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		// Wide runes may leave the truncated text one column short
		result := runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
		return runewidth.FillRight(result, width)
	}

	if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}
