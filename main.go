package main

import "github.com/krishkalaria12/plantdoc-serve/cmd"

func main() {
	cmd.Execute()
}
