package main

import "photomarket/cmd/photomarket/commands"

func main() {
	commands.Execute()
}
