package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads validated answers from a line-oriented input. Every Request
// method re-prompts until it gets a valid answer and returns io.EOF once the
// input is exhausted.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// RequestInteger accepts a positive whole number.
func (p *Prompter) RequestInteger(prompt string) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, reason := parsePositive(line)
		if reason == "" {
			return n, nil
		}
		fmt.Fprintf(p.out, "Invalid input: %s\n", reason)
	}
}

func parsePositive(s string) (int, string) {
	if s == "" {
		return 0, "Input cannot be empty. Please try again."
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, "Input must be a valid positive whole integer."
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, "Input must be a valid positive whole integer."
	}
	if n == 0 {
		return 0, "Input cannot be zero. Please try again."
	}
	return n, ""
}

// RequestString accepts any non-empty line.
func (p *Prompter) RequestString(prompt string) (string, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.out, "Input cannot be empty. Please try again.")
	}
}

// RequestYesNo accepts a single Y or N in either case.
func (p *Prompter) RequestYesNo(prompt string) (bool, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch {
		case line == "":
			fmt.Fprintln(p.out, "Input cannot be empty. Please try again.")
		case strings.EqualFold(line, "y"):
			return true, nil
		case strings.EqualFold(line, "n"):
			return false, nil
		default:
			fmt.Fprintln(p.out, "Invalid input. Please enter 'Y' or 'N'.")
		}
	}
}
