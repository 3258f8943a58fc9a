package main

import "github.com/jfmyers9/radionet/cmd"

func main() {
	cmd.Execute()
}
