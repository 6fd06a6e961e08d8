package main

import "github.com/AdeThorMiwa/crockford-uuid/internal/cli"

func main() {
	cli.Execute()
}
