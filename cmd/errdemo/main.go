package main

import "github.com/Fuabioo/errdemo/internal/cli"

func main() {
	cli.Execute()
}
