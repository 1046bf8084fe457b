package main

import "github.com/subsurf/gotough/cmd"

func main() {
	cmd.Execute()
}
