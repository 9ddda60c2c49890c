package main

import "github.com/stackboard/stackboard/cmd/boardctl/cmd"

func main() {
	cmd.Execute()
}
