package main

import "github.com/sinotca/mdbook-sinotca-flavord/cmd/flavord"

func main() {
	flavord.Execute()
}
