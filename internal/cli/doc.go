// Package cli provides command-line interface setup and configuration
// for the flashcards application. It handles flag parsing, command
// creation, logger construction and configuration management using
// cobra and viper.
package cli
