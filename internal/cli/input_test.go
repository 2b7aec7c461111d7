package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine_TrimsInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  alice  \n"))
	var out bytes.Buffer

	line, err := ReadLine(reader, "Enter username: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", line)
	assert.Equal(t, "Enter username: ", out.String())
}

func TestReadLine_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("alice"))
	var out bytes.Buffer

	line, err := ReadLine(reader, "", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", line)
}

func TestReadChoice_RepromptsOnInvalidInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("abc\n\n2\n"))
	var out bytes.Buffer

	choice, err := ReadChoice(reader, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, choice)
	assert.Equal(t, 2, strings.Count(out.String(), "Your input is invalid!"))
}

func TestReadFloat_RejectsNegativeAndGarbage(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("oops\n-1\n10.5\n"))
	var out bytes.Buffer

	value, err := ReadFloat(reader, "Enter maximum price: ", &out)
	require.NoError(t, err)
	assert.Equal(t, 10.5, value)
	assert.Equal(t, 2, strings.Count(out.String(), "Your input is invalid!"))
}

func TestReadPassword_FallsBackWithoutTerminal(t *testing.T) {
	restore := isTerminalFn
	isTerminalFn = func(fd int) bool { return false }
	defer func() { isTerminalFn = restore }()

	reader := bufio.NewReader(strings.NewReader("secret\n"))
	var out bytes.Buffer

	pw, err := ReadPassword(reader, "Enter password: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
}

func TestReadPassword_UsesTerminalReader(t *testing.T) {
	restoreTerm := isTerminalFn
	restoreRead := readPasswordFn
	isTerminalFn = func(fd int) bool { return true }
	readPasswordFn = func(fd int) ([]byte, error) { return []byte("hidden"), nil }
	defer func() {
		isTerminalFn = restoreTerm
		readPasswordFn = restoreRead
	}()

	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	pw, err := ReadPassword(reader, "Enter password: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "hidden", pw)
}
