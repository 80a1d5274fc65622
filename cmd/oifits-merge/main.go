// Command oifits-merge consolidates OIFITS documents into a single
// self-consistent document.
package main

import "oifits-merge/internal/cli"

func main() {
	cli.Execute()
}
