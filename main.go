package main

import "github.com/alexiusacademia/gocnc/cmd"

func main() {
	cmd.Execute()
}
