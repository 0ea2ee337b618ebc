// Lintel is a Go source linter.
package main

import "github.com/mouse-blink/lintel/cmd"

func main() {
	cmd.Execute()
}
