package main

import "github.com/mcoot/hangman-solver/internal/cli"

func main() {
	cli.Execute()
}
