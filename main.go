package main

import "showsync/cmd"

func main() {
	cmd.Execute()
}
