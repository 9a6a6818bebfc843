package main

import (
	"chyp8vm/cmd"
)

func main() {
	cmd.Execute()
}
