package platform

import "strings"

// Prefix is the fixed leading component of every platform directory name
// ("android-21", "android-Tiramisu", ...).
const Prefix = "android"

// Release is the classified form of one platform directory name. Numeric
// selects which of Level and Codename is meaningful.
type Release struct {
	Prefix   string // Name component before the first separator, verbatim.
	Raw      string // Token after the first separator, verbatim.
	Numeric  bool
	Level    int    // API level; valid when Numeric.
	Codename string // Pre-release label; valid when !Numeric.
}

// ParseName classifies a directory name of the structural form
// "<prefix>-<token>". The name is split once on the first separator; ok is
// false only when no separator is present at all.
//
// A token is numeric only when it is a canonical base-10 integer: all
// digits, no sign, no leading zero. Anything else ("007", "+9", "Tiramisu")
// is a codename. This is classification, not validation; odd tokens are
// resolved or removed by the later passes, never rejected here.
func ParseName(name string) (Release, bool) {
	prefix, token, found := strings.Cut(name, "-")
	if !found {
		return Release{}, false
	}
	if level, ok := parseLevel(token); ok {
		return Release{Prefix: prefix, Raw: token, Numeric: true, Level: level}, true
	}
	return Release{Prefix: prefix, Raw: token, Codename: token}, true
}

// parseLevel interprets token as a canonical base-10 API level.
func parseLevel(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	if len(token) > 1 && token[0] == '0' {
		return 0, false
	}
	level := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		level = level*10 + int(c-'0')
	}
	return level, true
}
