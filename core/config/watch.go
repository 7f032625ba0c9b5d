// File: watch.go
// Title: Configuration Reload and File Watching
// Description: Re-reads the configuration file, swaps in the new data and
//              notifies subscribers with every dotted key whose value
//              changed. Watch polls the file modification time.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of reload and polling watcher

package config

import (
	"context"
	"os"
	"time"

	nxerror "github.com/msto63/netext/core/error"
	nxerrors "github.com/msto63/netext/core/errors"
	"github.com/msto63/netext/core/log"
	"github.com/msto63/netext/utils/stringx"
)

// DefaultWatchInterval is the polling interval used when Watch gets zero
const DefaultWatchInterval = time.Second

// Reload re-reads the configuration file and notifies subscribers once per
// changed key, in sorted key order. It returns the changed keys. On error
// the current data is kept.
func (c *Config) Reload() ([]string, error) {
	c.mu.RLock()
	filePath, format := c.filePath, c.format
	c.mu.RUnlock()

	if stringx.IsBlank(filePath) {
		return nil, nxerror.New("configuration was not loaded from a file").
			WithCode(nxerror.CodeValidationFailed).
			WithOperation("config.reload")
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, nxerrors.OperationFailed(nxerrors.ModuleConfig, "reload", err)
	}

	newData, err := readFile(filePath, format)
	if err != nil {
		return nil, nxerrors.OperationFailed(nxerrors.ModuleConfig, "reload", err)
	}

	c.mu.Lock()
	changed := changedKeys("", c.data, newData)
	c.data = newData
	c.lastModified = info.ModTime()
	c.mu.Unlock()

	c.logger.Info("configuration reloaded", log.Fields{
		"path":    filePath,
		"changed": len(changed),
	})

	for _, key := range changed {
		c.NotifyPropertyChanged(key)
	}
	return changed, nil
}

// Watch polls the configuration file every interval and calls Reload when
// its modification time advances. It blocks until ctx is done. Handlers run
// on the watching goroutine, so subscribe before calling Watch.
func (c *Config) Watch(ctx context.Context, interval time.Duration) error {
	c.mu.RLock()
	filePath := c.filePath
	c.mu.RUnlock()

	if stringx.IsBlank(filePath) {
		return nxerror.New("file path required for watching").
			WithCode(nxerror.CodeValidationFailed).
			WithOperation("config.watch")
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		info, err := os.Stat(filePath)
		if err != nil {
			// file may be mid-rename by an editor
			continue
		}

		c.mu.RLock()
		lastModified := c.lastModified
		c.mu.RUnlock()

		if !info.ModTime().After(lastModified) {
			continue
		}
		if _, err := c.Reload(); err != nil {
			c.logger.ErrorWithErr("configuration reload failed", err, log.Fields{"path": filePath})
		}
	}
}
