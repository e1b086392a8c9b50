// Package meta loads and models the platforms metadata descriptor: the
// supported API level range and the codename alias table that drive
// platform-directory reconciliation.
package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Platforms describes which platform releases belong in the tree. It is
// loaded once per run by [Load] and never mutated afterwards.
type Platforms struct {
	Min     int            // Lowest supported API level (inclusive).
	Max     int            // Highest supported API level (inclusive).
	Aliases map[string]int // Codename → the numeric level it will become.
}

// FormatError reports a metadata file that is missing, not parseable as
// structured data, missing a required field, or carrying a field of the
// wrong shape. It is always raised before any filesystem mutation.
type FormatError struct {
	Path   string
	Reason string
	Err    error // Underlying read/parse error, if any.
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid platforms metadata %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid platforms metadata %s: %s", e.Path, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Load reads the platforms metadata from path. The decoder is YAML, which
// also accepts the checked-in JSON form of the file. All three fields are
// required and nothing is defaulted: a silently synthesized range or alias
// table would delete or keep the wrong releases.
//
// Levels must be genuine integers. The fields are decoded as yaml.Node and
// tag-checked before conversion because decoding straight into int coerces
// floats (33.5 would load as 33), and a truncated bound keeps or deletes
// the wrong releases.
//
// Alias values are allowed to fall outside [Min, Max]; a codename may be
// assigned a level the tree does not currently support.
func Load(path string) (Platforms, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Platforms{}, &FormatError{Path: path, Reason: "cannot read file", Err: err}
	}

	// Zero-valued nodes distinguish "absent" from a present-but-wrong
	// value. The fields are value-typed because yaml.v3 decodes into
	// yaml.Node but not into *yaml.Node.
	var doc struct {
		Min     yaml.Node `yaml:"min"`
		Max     yaml.Node `yaml:"max"`
		Aliases yaml.Node `yaml:"aliases"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Platforms{}, &FormatError{Path: path, Reason: "malformed document", Err: err}
	}

	switch {
	case doc.Min.IsZero():
		return Platforms{}, &FormatError{Path: path, Reason: `missing required field "min"`}
	case doc.Max.IsZero():
		return Platforms{}, &FormatError{Path: path, Reason: `missing required field "max"`}
	case doc.Aliases.IsZero():
		return Platforms{}, &FormatError{Path: path, Reason: `missing required field "aliases"`}
	}

	min, err := intField(path, `field "min"`, &doc.Min)
	if err != nil {
		return Platforms{}, err
	}
	max, err := intField(path, `field "max"`, &doc.Max)
	if err != nil {
		return Platforms{}, err
	}
	aliases, err := aliasTable(path, &doc.Aliases)
	if err != nil {
		return Platforms{}, err
	}

	if min > max {
		return Platforms{}, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("min %d exceeds max %d", min, max),
		}
	}

	return Platforms{Min: min, Max: max, Aliases: aliases}, nil
}

// intField converts one scalar node to an int, rejecting anything that is
// not tagged as a YAML integer (floats, strings, booleans, null).
func intField(path, what string, n *yaml.Node) (int, error) {
	if n.Kind != yaml.ScalarNode || n.Tag != "!!int" {
		return 0, &FormatError{Path: path, Reason: what + " must be an integer"}
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return 0, &FormatError{Path: path, Reason: what + " must be an integer", Err: err}
	}
	return v, nil
}

// aliasTable converts the aliases node to a codename→level map, requiring a
// mapping with integer values.
func aliasTable(path string, n *yaml.Node) (map[string]int, error) {
	if n.Kind != yaml.MappingNode {
		return nil, &FormatError{Path: path, Reason: `field "aliases" must be a mapping of codename to integer`}
	}
	aliases := make(map[string]int, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		var codename string
		if err := n.Content[i].Decode(&codename); err != nil {
			return nil, &FormatError{Path: path, Reason: "alias codenames must be strings", Err: err}
		}
		level, err := intField(path, fmt.Sprintf("alias %q", codename), n.Content[i+1])
		if err != nil {
			return nil, err
		}
		aliases[codename] = level
	}
	return aliases, nil
}
