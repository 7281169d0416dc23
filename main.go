package main

import "github.com/quocvuong92/neosh/cmd"

func main() {
	cmd.Execute()
}
