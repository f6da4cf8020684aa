package main

import "github.com/mytheresa/product-categories/cmd/catalog/commands"

func main() {
	commands.Execute()
}
