package main

import "github.com/karimsaad/wasel_backend/cmd"

func main() {
	cmd.Execute()
}
