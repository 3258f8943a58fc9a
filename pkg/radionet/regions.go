package radionet

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultRegion is the region used when none, or an unknown one, is configured.
const DefaultRegion = "us"

// regions maps the short region codes radio.net serves to their locale tags.
var regions = map[string]language.Tag{
	"at": language.MustParse("de-AT"),
	"au": language.MustParse("en-AU"),
	"br": language.MustParse("pt-BR"),
	"ca": language.MustParse("en-CA"),
	"co": language.MustParse("es-CO"),
	"de": language.MustParse("de-DE"),
	"dk": language.MustParse("da-DK"),
	"es": language.MustParse("es-ES"),
	"fr": language.MustParse("fr-FR"),
	"ie": language.MustParse("en-IE"),
	"it": language.MustParse("it-IT"),
	"mx": language.MustParse("es-MX"),
	"nl": language.MustParse("nl-NL"),
	"nz": language.MustParse("en-NZ"),
	"pl": language.MustParse("pl-PL"),
	"pt": language.MustParse("pt-PT"),
	"se": language.MustParse("sv-SE"),
	"uk": language.MustParse("en-GB"),
	"us": language.MustParse("en-US"),
	"za": language.MustParse("en-ZA"),
}

// LocaleFor returns the accept-language value for a region code.
// The boolean is false when the region is not served by radio.net.
func LocaleFor(region string) (string, bool) {
	tag, ok := regions[region]
	if !ok {
		return "", false
	}
	return tag.String(), true
}

// ResolveRegion maps user input to a supported region code. It accepts a
// region code in any case ("DE") or a locale tag whose region is served,
// such as "de-AT" or "en_GB". Tags without an explicit region ("en") are
// rejected rather than guessed.
func ResolveRegion(input string) (string, bool) {
	code := strings.ToLower(strings.TrimSpace(input))
	if _, ok := regions[code]; ok {
		return code, true
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		return "", false
	}

	code = strings.ToLower(region.String())
	if code == "gb" {
		code = "uk"
	}
	if _, ok := regions[code]; !ok {
		return "", false
	}
	return code, true
}

// DefaultLocale returns the locale of DefaultRegion.
func DefaultLocale() string {
	return regions[DefaultRegion].String()
}

// Regions returns all supported region codes in sorted order.
func Regions() []string {
	codes := make([]string, 0, len(regions))
	for code := range regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
