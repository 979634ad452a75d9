package main

import "github.com/kamal-hamza/fsviz/cmd"

func main() {
	cmd.Execute()
}
