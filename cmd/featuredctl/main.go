// Package main is the entry point for the featuredctl command line tool.
package main

import "github.com/vyrodovalexey/featured-content/cmd/featuredctl/cmd"

func main() {
	cmd.Execute()
}
