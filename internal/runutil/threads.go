package runutil

import "runtime"

// Threads resolves a --threads value: 0 means one worker per CPU.
func Threads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}
