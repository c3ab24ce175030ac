// Package terminal reads line-oriented console input and writes prompts.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"hotel/shared/timezone"
	"hotel/shared/validator"

	"golang.org/x/term"
)

const (
	MessageChoice  = "Please make your choice: "
	MessageInvalid = "Your input is invalid!"

	noTerminal = -1
)

var errNotFinite = errors.New("number is not finite")

type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	// file descriptor of in when it is an interactive terminal
	fd int
}

func New(in io.Reader, out io.Writer) *Terminal {
	fd := noTerminal
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		fd = int(file.Fd())
	}

	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

func (t *Terminal) Out() io.Writer {
	return t.out
}

func (t *Terminal) Println(args ...any) {
	fmt.Fprintln(t.out, args...)
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// ReadLine returns the next input line without its line ending. The last line may lack a
// newline; io.EOF is returned only when nothing was read.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt prints label and returns the trimmed answer.
func (t *Terminal) Prompt(label string) (string, error) {
	t.Printf("%s", label)

	line, err := t.ReadLine()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// ReadChoice reads a menu number, asking again until the input is an integer.
func (t *Terminal) ReadChoice() (int, error) {
	return readParsed(t, MessageChoice, strconv.Atoi)
}

func (t *Terminal) ReadInt(label string) (int, error) {
	return readParsed(t, label, strconv.Atoi)
}

func (t *Terminal) ReadInt64(label string) (int64, error) {
	return readParsed(t, label, func(value string) (int64, error) {
		return strconv.ParseInt(value, 10, 64)
	})
}

func (t *Terminal) ReadFloat(label string) (float64, error) {
	return readParsed(t, label, func(value string) (float64, error) {
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, err
		}

		if math.IsNaN(number) || math.IsInf(number, 0) {
			return 0, errNotFinite
		}

		return number, nil
	})
}

// ReadDate reads a MM/DD/YYYY date as a calendar day.
func (t *Terminal) ReadDate(label string) (time.Time, error) {
	return readParsed(t, label+"(MM/DD/YYYY): ", parseDate)
}

func parseDate(value string) (time.Time, error) {
	if err := validator.ValidateVar(value, "usdate"); err != nil {
		return time.Time{}, err
	}

	return timezone.ParseDate(value)
}

// ReadPassword reads a secret without echo on a terminal and as a plain line otherwise.
func (t *Terminal) ReadPassword(label string) (string, error) {
	if t.fd == noTerminal {
		return t.Prompt(label)
	}

	t.Printf("%s", label)

	secret, err := term.ReadPassword(t.fd)
	t.Println()

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(secret), nil
}

// Confirm asks a yes/no question; anything but y or yes is a no.
func (t *Terminal) Confirm(label string) (bool, error) {
	answer, err := t.Prompt(label + " (y/n): ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (t *Terminal) WaitEnter(message string) error {
	t.Printf("%s", message)

	_, err := t.ReadLine()

	return err
}

func readParsed[T any](t *Terminal, label string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := t.Prompt(label)
		if err != nil {
			var zero T

			return zero, err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}

		t.Println(MessageInvalid)
	}
}
