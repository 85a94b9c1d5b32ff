package main

import "github.com/jhalvorsen/hz-events/internal/cli"

func main() {
	cli.Execute()
}
