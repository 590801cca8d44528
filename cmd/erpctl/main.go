package main

import "go-retail-erp/cmd/erpctl/commands"

func main() {
	commands.Execute()
}
