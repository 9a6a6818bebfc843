package chyp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const wordsPerRow = 4

// Describer names the instruction a memory word encodes.
type Describer func(opcode uint16) string

// Dump writes memory as rows of 2-byte words prefixed with their address.
// Rows at or above codeStart are followed by the described instructions when
// describe is not nil. Rows that are entirely zero are collapsed into "*".
func Dump(w io.Writer, memory []byte, codeStart uint16, describe Describer) error {
	buf := bufio.NewWriter(w)
	skipping := false

	for addr := 0; addr+1 < len(memory); addr += 2 * wordsPerRow {
		end := addr + 2*wordsPerRow
		if end > len(memory) {
			end = len(memory)
		}
		row := memory[addr:end]

		if isZero(row) {
			if !skipping {
				_, _ = fmt.Fprintln(buf, "*")
			}
			skipping = true
			continue
		}
		skipping = false

		_, _ = fmt.Fprintf(buf, "%04x\t", addr)
		var names []string
		for i := 0; i+1 < len(row); i += 2 {
			word := uint16(row[i])<<8 | uint16(row[i+1])
			_, _ = fmt.Fprintf(buf, "%04x ", word)
			if describe != nil && addr+i >= int(codeStart) {
				names = append(names, describe(word))
			}
		}
		if len(names) > 0 {
			_, _ = fmt.Fprintf(buf, "\t; %s", strings.Join(names, " | "))
		}
		_, _ = fmt.Fprintln(buf)
	}

	return buf.Flush()
}

func isZero(data []byte) bool {
	for _, b := range data {
		if b != 0 {
			return false
		}
	}
	return true
}
