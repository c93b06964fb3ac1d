// Command pinsample prints how a handful of sample identity numbers parse,
// format and hint at age and gender, then describes one number read from stdin.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"personnummer/pkg/personnummer"
)

var samples = []string{
	"990913+9801",
	"120211+9986",
	"990807-2391",
	"180101-2392",
	"180101.2392",
	"ABC",
}

func main() {
	if err := run(os.Stdin, os.Stdout, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run describes the samples, then prompts for a number on in and describes it.
// An empty answer ends the program without a further line.
func run(in io.Reader, out io.Writer, ref time.Time) error {
	describe(out, samples, ref)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "What is your (Swedish) Personal Identity Number?")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	describe(out, []string{line}, ref)
	return nil
}

func describe(w io.Writer, inputs []string, ref time.Time) {
	for _, input := range inputs {
		n, err := personnummer.ParseAt(input, ref)
		if err != nil {
			fmt.Fprintf(w, "%-13s invalid: %v\n", input, err)
			continue
		}

		age, err := n.AgeHintAt(ref)
		if err != nil {
			fmt.Fprintf(w, "%-13s %s  age: %v\n", input, n.ShortStringAt(ref), err)
			continue
		}
		fmt.Fprintf(w, "%-13s %s  %s  born %s  age %d  %s\n",
			input,
			n.ShortStringAt(ref),
			n.LongString(),
			n.DateOfBirthHint().Format(time.DateOnly),
			age,
			n.GenderHint(),
		)
	}
}
