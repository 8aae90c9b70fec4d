// Package statsview serves runtime statistics of the emulator over HTTP
// when built with the statsview tag. Without the tag Launch does nothing.
//
// Graphs are served at:
//
//	localhost:12600/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview
