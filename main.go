package main

import "github.com/quarrylane/pastime/cmd"

func main() {
	cmd.Execute()
}
