package main

import "github.com/OpenTraceLab/notation/cmd/notation/cmd"

func main() {
	cmd.Execute()
}
