// Package config manages user-level settings stored at ~/.wb-agent/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default project type, the IDE tools to emit rule files for, and the
// diagnostic log level.
package config
