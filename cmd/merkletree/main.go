package main

import (
	"github.com/estensen/merkletree/internal/cmd"
)

func main() {
	cmd.Execute()
}
