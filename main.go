package main

import "wishplan/cmd"

func main() {
	cmd.Execute()
}
