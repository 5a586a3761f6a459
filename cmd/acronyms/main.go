package main

import (
	"context"
	"log"

	"github.com/nsqlite/acronyms/internal/acronyms"
)

func main() {
	if err := acronyms.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
