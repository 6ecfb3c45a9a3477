package main

import "github.com/withlaunch/bluectl/cmd"

func main() {
	cmd.Execute()
}
