// Command flights searches flight itineraries over a local route network.
package main

import "github.com/mesh-intelligence/flights/internal/cli"

func main() {
	cli.Execute()
}
