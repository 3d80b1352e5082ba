// gocubie - cubie-level Rubik's Cube simulator and GoCube mirror.
package main

import (
	"github.com/SeamusWaldron/gocubie/internal/cli"
)

func main() {
	cli.Execute()
}
