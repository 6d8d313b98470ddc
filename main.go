package main

import (
	"cardprobe/cmd"
	"log"
	"os"
)

func main() {
	app := cmd.NewProbe()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
