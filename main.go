package main

import "github.com/gaurav-prasanna/kiloscrape/cmd"

func main() {
	cmd.Execute()
}
