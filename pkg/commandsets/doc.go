// Package commandsets holds the host's published command-set enumerations.
//
// Each set is an integer type whose name ends in "CmdID", tagged with a
// cmdgen:set annotation naming the owning 128-bit identifier. cmdgen scans
// this package to learn which (set, value) pairs exist before resolving
// display names against the live host command table. Values mirror the
// host's published headers and must not be renumbered.
package commandsets
