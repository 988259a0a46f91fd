// Package main hosts the mkvedit CLI entrypoint and command graph.
//
// Running mkvedit with no arguments starts the interactive session: pick a
// file, choose the tracks to keep, optionally rename them or move the default
// flag, and remux with mkvmerge. The Cobra command tree also offers a
// dependency report (check) and configuration scaffolding (config init,
// config validate). Configuration resolution and logger setup live here so
// the internal packages receive ready-made values.
package main
