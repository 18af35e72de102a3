// Package config loads the settings of the pixeltracer commands from the
// environment and an optional .env file.
package config
