package main

import "github.com/wasabi0522/musubi/cmd"

func main() {
	cmd.Execute()
}
