package main

var day02aCmd = newPuzzleCmd("day02a", `Follow a course of "forward|down|up <n>" commands and print the product
of final horizontal position and depth.

down and up change depth directly.

Example:
  aoc day02a input/day02.txt`)

var day02bCmd = newPuzzleCmd("day02b", `Follow a course of "forward|down|up <n>" commands with steering aim and
print the product of final horizontal position and depth.

down and up change aim; forward moves ahead and sinks by aim × n.
An unknown command or a line without exactly two tokens aborts the run.

Example:
  aoc day02b input/day02.txt`)

func init() {
	rootCmd.AddCommand(day02aCmd, day02bCmd)
}
