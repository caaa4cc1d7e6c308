package main

import "github.com/davebream/mcpcall/cmd"

func main() {
	cmd.Execute()
}
