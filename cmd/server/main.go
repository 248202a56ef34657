package main

import "woonlasten/internal/app/server"

func main() {
	server.Run()
}
