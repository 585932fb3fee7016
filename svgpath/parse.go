package svgpath

import (
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// commandLetters are the letters starting a new run.
// 'e' and 'E' are absent since they belong to the number syntax.
const commandLetters = "MmLlHhVvCcSsQqTtAaZz"

func isCommandLetter(b byte) bool {
	return strings.IndexByte(commandLetters, b) >= 0
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', ',', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// ParseNumbers splits `s` on whitespace and commas and returns
// the fields which are valid, finite numbers. Invalid fields are dropped
// silently, so that for malformed input the following operands
// are shifted into the place of the missing ones.
func ParseNumbers(s string) []float64 {
	fields := strings.FieldsFunc(s, isSeparator)
	out := make([]float64, 0, len(fields))
	for _, field := range fields {
		f, n := strconv.ParseFloat([]byte(field))
		if n == 0 || n != len(field) || math.IsInf(f, 0) || math.IsNaN(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Parse tokenizes the path data `d` into runs anchored by one command
// letter. Text before the first letter is discarded.
func Parse(d string) []Command {
	var (
		cmds  []Command
		start = -1
	)
	for i := 0; i < len(d); i++ {
		if !isCommandLetter(d[i]) {
			continue
		}
		if start >= 0 {
			cmds = append(cmds, Command{Letter: d[start], Args: ParseNumbers(d[start+1 : i])})
		}
		start = i
	}
	if start >= 0 {
		cmds = append(cmds, Command{Letter: d[start], Args: ParseNumbers(d[start+1:])})
	}
	return cmds
}
