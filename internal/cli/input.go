package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPasswordFn is a test seam for term.ReadPassword.
var readPasswordFn = term.ReadPassword

// isTerminalFn is a test seam for term.IsTerminal.
var isTerminalFn = term.IsTerminal

// ReadLine prints a prompt to w and reads a single trimmed line from
// reader. If EOF occurs after some input was read, the partial line is
// returned.
func ReadLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadChoice reads a menu selection, re-prompting until the line
// parses as an integer. Malformed input is reported, never fatal.
func ReadChoice(reader *bufio.Reader, w io.Writer) (int, error) {
	for {
		line, err := ReadLine(reader, "Please make your choice: ", w)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(w, "Your input is invalid!")
			continue
		}
		return choice, nil
	}
}

// ReadFloat reads a non-negative number, re-prompting on bad input.
func ReadFloat(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	for {
		line, err := ReadLine(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil || value < 0 {
			fmt.Fprintln(w, "Your input is invalid!")
			continue
		}
		return value, nil
	}
}

// ReadPassword reads a password without echo when stdin is a
// terminal; piped input falls back to a plain line read.
func ReadPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminalFn(fd) {
		return ReadLine(reader, prompt, w)
	}
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPasswordFn(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
