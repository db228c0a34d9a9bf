package pureguard

import "strings"

// ClassNames joins CSS class names with single spaces, dropping names that
// are empty or only white space. Kept names are not trimmed.
//
// Pair it with When for conditional classes:
//
//	ClassNames("btn", When(!valid, "disabled")) // "btn disabled" when invalid
func ClassNames(names ...string) string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}

// Cns is shorthand for ClassNames.
var Cns = ClassNames

// When returns name if cond holds and "" otherwise.
func When(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}
