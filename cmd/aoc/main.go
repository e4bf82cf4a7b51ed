// Command aoc solves Advent of Code 2021 puzzles from plain-text inputs.
package main

func main() {
	Execute()
}
