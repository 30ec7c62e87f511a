package main

import "github.com/nrad-K/go-vacancy-collector/cmd"

func main() {
	cmd.Execute()
}
