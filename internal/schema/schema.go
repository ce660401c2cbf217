// Package schema provides the principal schematics for all other packages. It
// defines the attribute snapshot and change record structures and provides
// implementations for handling (Unix-based) operating system syscalls and
// identity database lookups. The package serves as a foundational layer for
// the reconciliation packages throughout the codebase.
package schema
