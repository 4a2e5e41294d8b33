// Command starfield is an interactive 3D star catalog for the terminal.
package main

func main() {
	Execute()
}
