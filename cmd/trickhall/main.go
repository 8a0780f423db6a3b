package main

import (
	"github.com/mattrk/trickhall/internal/cli"
)

func main() {
	cli.Execute()
}
