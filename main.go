package main

import "taskflow.com/taskflow/cmd"

func main() {
	cmd.Execute()
}
