package main

import "property-engine/cmd"

func main() {
	cmd.Execute()
}
