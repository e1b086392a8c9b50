package platform

import (
	"fmt"
	"strings"
)

// AliasCollisionError reports a codename rename whose numeric target name
// already exists. The reconciliation pass stops at the colliding pair and
// leaves both entries untouched; entries processed earlier in the
// deterministic order keep whatever state they already reached.
type AliasCollisionError struct {
	Codename string
	From     string // Path of the codenamed directory.
	To       string // Path that already exists.
}

func (e *AliasCollisionError) Error() string {
	return fmt.Sprintf("could not rename %s to %s because %s already exists",
		e.From, e.To, e.To)
}

// UnresolvedCodenameError reports every codenamed directory that survived
// reconciliation. The downstream toolchain accepts only numeric release
// names, so the full list is carried at once: the operator decides between
// adding aliases and accepting removal in a single pass.
type UnresolvedCodenameError struct {
	Paths []string
}

func (e *UnresolvedCodenameError) Error() string {
	return fmt.Sprintf("found unhandled codenamed releases in the sysroot; "+
		"Clang requires numeric releases, so each must be aliased in the "+
		"platforms metadata or removed:\n%s", strings.Join(e.Paths, "\n"))
}
