// Command gorep writes the lines of a directory tree that match a regular
// expression to an output file.
package main

import "github.com/mouse-blink/gorep/cmd"

func main() {
	cmd.Execute()
}
