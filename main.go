package main

import "github.com/furnimed/catalog-admin/cmd"

func main() {
	cmd.Execute()
}
