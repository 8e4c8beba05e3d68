// Command mdvalidate validates a Markdown document against a
// Markdown-shaped schema document.
package main

import "github.com/404wolf/mdvalidate/cmd/mdvalidate/commands"

func main() {
	commands.Execute()
}
