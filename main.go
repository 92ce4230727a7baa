package main

import "github.com/mmuldo/colormatch/cmd"

func main() {
	cmd.Execute()
}
