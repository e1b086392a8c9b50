// Package platform rewrites the per-API-level platform directories of an
// extracted prebuilt package so that only releases the metadata allows
// survive, all under purely numeric names.
//
// The work splits along these boundaries:
//
//   - parse.go: classifies one directory name into a numeric release or a
//     codenamed (pre-release) one.
//   - reconcile.go: the destructive keep/rename/remove pass over the
//     directory set, in deterministic order.
//   - verify.go: the post-pass check that no codenamed directory survived.
//   - errors.go: the typed failures callers match with errors.As.
//
// The package performs synchronous filesystem mutation with no rollback.
// Safety comes from the surrounding workflow (a disposable VCS branch and a
// fresh extraction per attempt), not from this package.
package platform
