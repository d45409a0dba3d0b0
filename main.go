package main

import "blog-sync/cmd"

func main() {
	cmd.Execute()
}
