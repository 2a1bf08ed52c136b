package main

import "github.com/prendradjaja/cal-classroom-creeper/cmd"

func main() {
	cmd.Execute()
}
