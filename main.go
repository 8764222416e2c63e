package main

import "httplite/cmd"

func main() {
	cmd.Execute()
}
