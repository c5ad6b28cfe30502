package main

import (
	_ "time/tzdata"

	"elektrichka/cmd"
)

func main() {
	cmd.Execute()
}
