// Package config loads and validates velum.json project configuration.
package config
