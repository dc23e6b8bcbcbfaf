package main

import "github.com/MuriloHTS/orca/cmd"

func main() {
	cmd.Execute()
}
