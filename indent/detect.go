/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package indent

import "strings"

// Detect guesses the indentation unit used by source.
//
// Tab-led lines vote for Tab. Space-indented lines vote for the step between
// their indentation and the previous indented line's, when that step is 2 or 4.
// Ties and documents without indentation fall back to Tab.
func Detect(source string) Unit {
	var tabs, twos, fours int
	prev := 0

	for line := range strings.Lines(source) {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		lead := line[:len(line)-len(trimmed)]
		switch {
		case lead == "":
			prev = 0
			continue
		case lead[0] == '\t':
			tabs++
			continue
		}

		width := len(lead) - len(strings.TrimLeft(lead, " "))
		step := width - prev
		if step < 0 {
			step = -step
		}
		switch step {
		case 4:
			fours++
		case 2:
			twos++
		}
		prev = width
	}

	switch {
	case tabs >= twos && tabs >= fours && tabs > 0:
		return Tab
	case fours > twos:
		return FourSpaces
	case twos > 0:
		return TwoSpaces
	default:
		return Tab
	}
}
