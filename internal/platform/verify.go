package platform

import "path/filepath"

// VerifyAllNumeric re-scans the reconciled directory set under root and
// fails with *UnresolvedCodenameError if any surviving platform directory
// still carries a codename. Every offender is reported, not just the first.
// On an all-numeric tree this is a no-op.
func VerifyAllNumeric(root string) error {
	names, err := scan(root)
	if err != nil {
		return err
	}
	var offenders []string
	for _, name := range names {
		rel, ok := ParseName(name)
		if ok && !rel.Numeric {
			offenders = append(offenders, filepath.Join(root, name))
		}
	}
	if len(offenders) > 0 {
		return &UnresolvedCodenameError{Paths: offenders}
	}
	return nil
}
