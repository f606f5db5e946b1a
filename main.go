package main

import "github.com/timetrack-cli/timetrack/cmd"

func main() {
	cmd.Execute()
}
