// Package main provides the entry point for the fcb2b CLI tool.
package main

import "github.com/fcb2b-project/fcb2b-go/cmd"

func main() {
	cmd.Execute()
}
