// Package tzdata maps ISO 3166-1 alpha-2 country codes to IANA time zones
// using the bundled zone.tab from the tz database.
package tzdata

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

//go:embed zone.tab
var zoneTab string

var (
	once   sync.Once
	byCode map[string][]string
)

// CountryTimezones returns the zones for a two-letter country code in zone.tab
// order, or nil when the code is unknown. Lookup is case-insensitive.
func CountryTimezones(iso2 string) []string {
	once.Do(func() {
		byCode = parse(zoneTab)
	})

	zones := byCode[strings.ToUpper(strings.TrimSpace(iso2))]
	if zones == nil {
		return nil
	}
	out := make([]string, len(zones))
	copy(out, zones)
	return out
}

// parse reads tab-separated lines of the form "CC<TAB>coords<TAB>zone[<TAB>comment]".
func parse(data string) map[string][]string {
	table := make(map[string][]string)

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		code := strings.ToUpper(fields[0])
		table[code] = append(table[code], fields[2])
	}
	return table
}
