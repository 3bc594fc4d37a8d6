package main

import "github.com/motorlab/ephys-catalog/cmd"

func main() {
	cmd.Execute()
}
