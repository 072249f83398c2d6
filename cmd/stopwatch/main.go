package main

import "github.com/mcoot/stopwatch/internal/cli"

func main() {
	cli.Execute()
}
