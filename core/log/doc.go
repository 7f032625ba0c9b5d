// Package log provides structured logging for netext.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with JSON, text and console output. Loggers
//              are immutable from the caller's point of view: WithName,
//              WithField and friends return copies, so a component can be
//              given its own named logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//   logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//   logger = logger.WithName("config")
//   logger.Info("reloaded", log.Int("changed", 2))
//   logger.LogError(err) // level chosen from the error severity
package log
