package main

import "github.com/vellum-dev/vellum/cmd/vellum/commands"

func main() {
	commands.Execute()
}
