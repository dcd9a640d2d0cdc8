package shell

import (
	"strconv"
	"strings"
)

// ExpandPID replaces every non-overlapping occurrence of the marker "$$"
// in line with the decimal form of pid, scanning left to right. Substituted
// digits are never rescanned for further matches. No other substitution
// syntax exists.
func ExpandPID(line string, pid int) string {
	return strings.ReplaceAll(line, "$$", strconv.Itoa(pid))
}
