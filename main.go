package main

import "inversion-spec/internal/cli"

func main() {
	cli.Execute()
}
