// Package config provides configuration structures and utilities for storestats.
// It defines the dataset location, report settings and column aliases, and
// loads them from an optional YAML configuration file.
package config
