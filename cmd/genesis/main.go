package main

import "github.com/baliza/genesis/internal/cli"

func main() {
	cli.Execute()
}
