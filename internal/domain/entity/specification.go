// Package entity contains the core business objects of the project.
package entity

import "strings"

// SpecificationGroup is one section of a product specification table:
// a heading plus the value lines listed under it.
type SpecificationGroup struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// ParseSpecificationText converts the legacy marker-delimited specification
// format into structured groups. A line wrapped in asterisks ("*Display*")
// opens a new group whose key is the text between the markers; every following
// non-empty line is collected as a value of the most recent group. Lines that
// appear before the first marker are dropped, as are blank lines.
func ParseSpecificationText(text string) []SpecificationGroup {
	groups := make([]SpecificationGroup, 0)

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if len(line) > 2 && strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*") {
			key := strings.TrimSpace(strings.Trim(line, "*"))
			groups = append(groups, SpecificationGroup{Key: key, Values: []string{}})

			continue
		}

		if len(groups) == 0 {
			continue
		}
		groups[len(groups)-1].Values = append(groups[len(groups)-1].Values, line)
	}

	return groups
}
