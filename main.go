package main

import "github.com/jkdabbert/app-data-dictionary/cmd"

func main() {
	cmd.Execute()
}
