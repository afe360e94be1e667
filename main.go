package main

import "github.com/ansnew/facetrack/cmd"

func main() {
	cmd.Execute()
}
