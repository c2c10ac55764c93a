package main

import polyscan "github.com/polyscan/polyscan/cmd/polyscan"

func main() {
	polyscan.Execute()
}
