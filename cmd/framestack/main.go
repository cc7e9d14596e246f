// Command framestack exercises the framestack allocators from the command line.
package main

func main() {
	execute()
}
