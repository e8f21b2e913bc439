package main

import (
	"notary-api/cmd/notary/cmd"
)

func main() {
	cmd.Execute()
}
