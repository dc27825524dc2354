package main

import "github.com/ceac-fct/placement-management/cmd"

func main() {
	cmd.Execute()
}
