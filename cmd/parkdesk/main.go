package main

import "parkdesk/cmd/parkdesk/command"

func main() {
	command.Execute()
}
