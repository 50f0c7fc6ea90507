// Package config loads gridpath settings from an optional .env file and
// the process environment. Every setting has a default, so an empty
// environment yields Default().
package config
