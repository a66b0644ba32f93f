package main

import "github.com/zjrosen/formatfield/cmd"

func main() {
	cmd.Execute()
}
