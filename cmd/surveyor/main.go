// Command surveyor checks design-model graphs for parameter compliance.
package main

import "github.com/mesh-intelligence/surveyor/internal/cli"

func main() {
	cli.Execute()
}
