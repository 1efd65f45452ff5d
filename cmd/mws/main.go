package main

import "github.com/vitalvas/mws/internal/cli"

func main() {
	cli.Execute()
}
