package main

import "github.com/Mia06-coder/github-user-activity-cli/cmd"

func main() {
	cmd.Execute()
}
