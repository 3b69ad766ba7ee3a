package main

import "github.com/arvindrk/eatdecider/cmd"

func main() {
	cmd.Execute()
}
