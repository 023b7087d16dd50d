package main

import "github.com/opticslab/bosactl/cmd/bosactl/cmd"

func main() {
	cmd.Execute()
}
