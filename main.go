// Package main is the entry point for the almanac CLI.
package main

import "almanac.dev/pkg/almanac/cmd"

func main() {
	cmd.Execute()
}
