package main

import "dabuild/cmd"

func main() {
	cmd.Execute()
}
