// cmd/server is the plain server entry point. It does exactly what
// `vastra serve` does, without pulling in the rest of the CLI.
package main

import (
	"log"

	"github.com/shashiranjanraj/vastra/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
