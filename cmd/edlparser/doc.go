// Package main hosts the edlparser CLI entrypoint and command graph.
//
// parse reads EDL files and prints the extracted clip records; generate goes
// one step further and creates the season/episode/shot folder tree for them.
// Configuration resolution, run IDs, and logger setup live in commandContext
// so subcommands only deal with presentation.
package main
