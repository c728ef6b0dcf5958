package main

import "github.com/NARENN143/Career/cmd/elevate/root"

func main() {
	root.Execute()
}
