// Package io provides the external formats of the FISC tools: the object
// file shared by the assembler and simulator, and the assembler listing.
package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/fisc/cpu"
)

// OBJECT_HEADER is the first line of every object file.
const OBJECT_HEADER = "v2.0 raw"

// WriteObject writes a word stream as an object file: the header line,
// then one two digit uppercase hex word per line.
func WriteObject(output io.Writer, words []cpu.Word) (err error) {
	wr := bufio.NewWriter(output)

	_, err = fmt.Fprintln(wr, OBJECT_HEADER)
	if err != nil {
		return
	}

	for _, word := range words {
		_, err = fmt.Fprintf(wr, "%02X\n", uint8(word))
		if err != nil {
			return
		}
	}

	err = wr.Flush()

	return
}

// ReadObject reads the word stream of an object file.
func ReadObject(input io.Reader) (words []cpu.Word, err error) {
	scanner := bufio.NewScanner(input)

	defer func() {
		if err != nil {
			words = nil
		}
	}()

	var lineno int
	for scanner.Scan() {
		lineno += 1
		text := strings.TrimRight(scanner.Text(), "\r")

		if lineno == 1 {
			if text != OBJECT_HEADER {
				err = &ErrObjectMalformed{LineNo: lineno, Line: text}
				return
			}
			continue
		}

		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(text, 16, 8)
		if err != nil {
			err = &ErrObjectMalformed{LineNo: lineno, Line: text}
			return
		}
		words = append(words, cpu.Word(value))
	}

	err = scanner.Err()
	if err != nil {
		err = &cpu.ErrFileUnreadable{Err: err}
		return
	}

	if lineno == 0 {
		err = &ErrObjectMalformed{LineNo: 1}
		return
	}

	return
}
