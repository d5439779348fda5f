package main

import "github.com/cprobe/plog/cmd"

func main() {
	cmd.Main()
}
