package main

import "tooltips/cmd"

func main() {
	cmd.Execute()
}
