package main

import "github.com/recipeapp/recipegen/pkg/cli"

func main() {
	cli.Execute()
}
