// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads netext settings from TOML or YAML files
//              and publishes changes through observable.Object.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides file-based configuration for the netext command and
for applications embedding the netext packages.

Values are addressed by dotted keys ("log.level", "right.pad"). Lookups
consult, in order, an environment variable derived from the key (with an
optional prefix: NETEXT_LOG_LEVEL), the loaded file, then the default
passed to the getter.

Supported formats:
  - TOML (.toml and any unknown extension)
  - YAML (.yaml, .yml)

# Change Notification

Config embeds observable.Object. Set notifies with the key it changed; Reload
diffs the old and new data and notifies once per changed leaf key:

	cfg, err := config.Load("netext.toml")
	if err != nil {
	    return err
	}
	cfg.Subscribe(func(_ any, key string) {
	    if key == "log.level" {
	        logger.SetLevel(log.ParseLevel(cfg.GetString(key)))
	    }
	})
	go cfg.Watch(ctx, time.Second)

Setting a value equal to the current one does not notify.

# Errors

Failures are *error.Error values tagged with module "config": a missing file
carries CodeMissingConfig, unreadable files CodeConfigError and parse
failures CodeInvalidConfig.
*/
package config
