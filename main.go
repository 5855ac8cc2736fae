package main

import "github.com/p5chmitz/mdtree/cmd"

func main() {
	cmd.Execute()
}
