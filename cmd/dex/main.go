package main

import "github.com/KirkDiggler/pokedex-bot-discord/cmd/dex/root"

func main() {
	root.Execute()
}
