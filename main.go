/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/community-pulse/cli/cmd"

func main() {
	cmd.Execute()
}
