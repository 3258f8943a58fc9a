// Package radionet provides a client library for the radio.net directory API.
//
// # Overview
//
// This package implements a small Go client for the public web API behind
// radio.net: station details, tag listings, stations by tag, simple
// categories and free-text search. It is a thin transport: it does not cache
// and does not normalize records. Higher layers own those concerns.
//
// # Quick Start
//
//	import "github.com/jfmyers9/radionet/pkg/radionet"
//
//	client := radionet.NewClient(radionet.Config{})
//
//	station, err := client.Stations().Details(ctx, "dancefm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(*station.Name)
//
// # Regions
//
// Every request carries an accept-language header. The API localizes names
// and listings by it, and some categories ("local") depend on it entirely:
//
//	locale, ok := radionet.LocaleFor("de") // "de-DE", true
//	if ok {
//	    client.SetLanguage(locale)
//	}
//
// User input such as "DE" or "de-AT" is mapped onto a region code with
// ResolveRegion first.
//
// # Pagination
//
// Listing endpoints take count and offset and answer with a Page holding
// TotalCount and the requested slice of Playables. TotalCount is reported on
// every page regardless of offset.
//
//	page, err := client.Stations().ByTag(ctx, "genres", "rock", 50, 0)
//
// # Error Handling
//
// Non-2xx responses are returned as *Error. A 2xx response with an empty or
// null body is ErrEmptyResponse, and Details with no match is ErrNotFound:
//
//	_, err := client.Stations().Details(ctx, "unknown")
//	switch {
//	case errors.Is(err, radionet.ErrNotFound):
//	    // no such station
//	case errors.Is(err, radionet.ErrEmptyResponse):
//	    // API answered with nothing
//	}
//
// # Configuration
//
//	client := radionet.NewClient(radionet.Config{
//	    Language:   "en-GB",
//	    HTTPClient: &http.Client{Timeout: 5 * time.Second},
//	    MaxRetries: 3, // retry network errors and 5xx
//	    Logger:     myLogger, // Implements radionet.Logger interface
//	})
package radionet
