package main

import "github.com/autotool/autotool/cmd"

func main() {
	cmd.Execute()
}
