// Package config loads, normalizes, and validates mkvedit configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads an optional TOML file from ~/.config/mkvedit/config.toml or
// ./mkvedit.toml. The defaults reproduce a plain interactive session, so the
// file only matters for users who want a non-PATH mkvmerge, a different
// output suffix, Chinese prompts, or a diagnostic log.
package config
