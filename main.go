package main

import (
	"ideaboard/cmd"
)

func main() {
	cmd.Execute()
}
