package main

import "example.com/SshHostGen/cmd"

func main() {
	cmd.Execute()
}
