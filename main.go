package main

import "github.com/bmatsuo/mlisp/cmd"

func main() {
	cmd.Execute()
}
