package main

import "djp.chapter42.de/taskstarter/cmd"

func main() {
	cmd.Execute()
}
