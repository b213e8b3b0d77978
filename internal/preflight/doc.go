// Package preflight provides readiness checks for the filesystem paths that
// edlparser reads from and writes to.
//
// The generate command runs RunAll before touching the directory tree so an
// unreadable EDL or a read-only base directory is reported once, up front,
// instead of as a failure per record.
package preflight
