package main

import "github.com/douhashi/coincidence/cmd"

func main() {
	cmd.Execute()
}
