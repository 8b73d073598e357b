// Package cli defines the sampleproc command line: the root command, its
// subcommands, flag handling, and viper configuration.
package cli
