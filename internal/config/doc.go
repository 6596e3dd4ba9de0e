// Package config provides the configuration system for gapvim.
//
// Settings are resolved from three sources, later ones overriding earlier:
//
//  1. Built-in defaults (see Default)
//  2. The user's TOML file, ~/.config/gapvim/config.toml by default
//  3. GAPVIM_* environment variables
//
// An environment variable names a section and a key separated by the first
// underscore after the prefix: GAPVIM_EDITOR_MAX_HISTORY sets
// editor.max_history and GAPVIM_LOG_LEVEL sets log.level.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Editor.MaxHistory)
//
// # Live Reload
//
// Watch reports edits of the file. Callbacks run on a background goroutine,
// so callers that own single-threaded state should forward the notification
// to their own event loop before calling Reload.
package config
