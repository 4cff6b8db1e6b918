package main

import "github.com/pfrederiksen/wc-matches/internal/cli"

func main() {
	cli.Execute()
}
