package main

import "davsh/cmd"

func main() {
	cmd.Execute()
}
