package main

import "github.com/Amruth-empire/crop-prediction/internal/cli"

func main() {
	cli.Execute()
}
