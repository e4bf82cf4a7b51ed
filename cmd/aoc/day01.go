package main

var day01aCmd = newPuzzleCmd("day01a", `Count depth measurements that are larger than the previous measurement.

The input holds one integer per line. The first measurement has nothing
to compare against and is never counted. Any line that is not an integer
aborts the run.

Example:
  aoc day01a
  aoc day01a input/day01.txt`)

var day01bCmd = newPuzzleCmd("day01b", `Count sliding-window sums that are larger than the previous sum.

Windows are --window measurements wide (default 3). Neighbouring windows
share all but their end measurements, so only those two are compared.

Example:
  aoc day01b
  aoc day01b --window 1 input/day01.txt`)

func init() {
	day01bCmd.Flags().IntVarP(&windowFlag, "window", "w", 0, "Measurements per window (default: sonar.window, 3)")
	rootCmd.AddCommand(day01aCmd, day01bCmd)
}
