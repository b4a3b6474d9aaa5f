package main

import "github.com/emiliopalmerini/chromastudio/internal/cli"

func main() {
	cli.Execute()
}
