// Keyhandler listens for key presses on a terminal or console and prints them.
// Keys can be bound to actions with a YAML file, and recorded to a database.
package main

import (
	"os"

	"github.com/elves/keyhandler/pkg/buildinfo"
	"github.com/elves/keyhandler/pkg/listen"
	"github.com/elves/keyhandler/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, listen.Program{})))
}
