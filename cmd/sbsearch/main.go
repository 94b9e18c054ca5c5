package main

import "github.com/isim/sbsearch/internal/cmd"

func main() {
	cmd.Execute()
}
