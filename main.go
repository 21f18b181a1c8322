package main

import "github.com/AlexanderBarlow/catering-any/cmd"

func main() {
	cmd.Execute()
}
