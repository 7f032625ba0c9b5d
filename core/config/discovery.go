// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first file matching
//              one of the configured base names and extensions and loads it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"

	nxerror "github.com/msto63/netext/core/error"
	nxerrors "github.com/msto63/netext/core/errors"
	"github.com/msto63/netext/core/log"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Paths      []string               // Directories searched in order
	Filenames  []string               // Base names without extension
	Extensions []string               // Extensions tried per base name
	EnvPrefix  string                 // Passed through to LoadOptions
	Defaults   map[string]interface{} // Passed through to LoadOptions
	Required   bool                   // Fail when no file is found
	Logger     *log.Logger            // Passed through to LoadOptions
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for netext.{toml,yaml,yml}
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "netext"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"netext"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover loads the first configuration file found. Without a file it
// returns a configuration holding only the defaults, unless Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
		Logger:    options.Logger,
	}

	path, err := FindConfigFile(options)
	if err == nil {
		cfg, err := LoadWithOptions(path, loadOptions)
		if err != nil {
			return nil, nxerror.Wrap(err, "found config file but failed to load it").
				WithOperation("config.discover").
				WithDetail("configPath", path)
		}
		return cfg, nil
	}

	if options.Required {
		return nil, err
	}
	return newConfig(mergeDefaults(nil, options.Defaults), FormatTOML, loadOptions), nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", nxerrors.NotFound(nxerrors.ModuleConfig, "discover", "configuration file").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"netext"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	candidates := make([]string, 0, len(paths)*len(filenames)*len(extensions))
	for _, dir := range paths {
		for _, name := range filenames {
			for _, ext := range extensions {
				candidates = append(candidates, filepath.Join(dir, name+ext))
			}
		}
	}
	return candidates
}
