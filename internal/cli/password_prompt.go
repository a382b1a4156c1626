package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	errPasswordMismatch       = errors.New("passwords do not match")
	errEmptyPassword          = errors.New("password must not be empty")
	errStdinUnavailable       = errors.New("stdin unavailable")
	errEchoControlUnsupported = errors.New("hidden password input is not supported on this platform, use a generated password instead")
)

// PromptNewPassword asks for the new account password twice with terminal
// echo turned off.
func PromptNewPassword(stdin *os.File, out io.Writer) (string, error) {
	if stdin == nil {
		return "", errStdinUnavailable
	}
	reader := bufio.NewReader(stdin)
	return promptNewPassword(out, func() ([]byte, error) {
		restore, err := suppressEcho(stdin)
		if err != nil {
			return nil, err
		}
		defer restore()
		return readSecretLine(reader)
	})
}

func promptNewPassword(out io.Writer, read func() ([]byte, error)) (string, error) {
	fmt.Fprint(out, "New mindguard password: ")
	first, err := read()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(first) == 0 {
		return "", errEmptyPassword
	}

	fmt.Fprint(out, "Confirm password: ")
	second, err := read()
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password confirmation: %w", err)
	}

	if string(first) != string(second) {
		return "", errPasswordMismatch
	}
	return string(first), nil
}

// readSecretLine reads up to the next newline. A final line without a newline
// is accepted.
func readSecretLine(reader *bufio.Reader) ([]byte, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return nil, io.ErrUnexpectedEOF
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
