package main

import "github.com/Salarvand-Education/unboundctl/cmd/unboundctl/cmd"

func main() {
	cmd.Execute()
}
