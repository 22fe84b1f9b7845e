package main

import "docshelf/cmd/docshelf-cli/cmd"

func main() {
	cmd.Execute()
}
