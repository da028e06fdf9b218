package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCancelled is returned when the user interrupts the interview (EOF on
// the input stream). Callers report it and exit cleanly with no side effects.
var ErrCancelled = errors.New("interview cancelled")

// Choice is one entry of a select or multi-select prompt.
type Choice struct {
	Name        string // display name, e.g. "GitHub Actions"
	Value       string // machine value, e.g. "github"
	Description string // one-line help shown next to the name
	Checked     bool   // default selection state (multi-select only)
}

// Interviewer asks sequential questions on an input/output pair.
type Interviewer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInterviewer wraps the given streams. Pass os.Stdin/os.Stderr for the
// real CLI; tests pass a strings.Reader and a bytes.Buffer.
func NewInterviewer(r io.Reader, w io.Writer) *Interviewer {
	return &Interviewer{in: bufio.NewReader(r), out: w}
}

// readLine reads one trimmed line, mapping EOF to ErrCancelled.
func (iv *Interviewer) readLine() (string, error) {
	line, err := iv.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Text asks a free-text question. A blank answer yields defaultValue.
func (iv *Interviewer) Text(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(iv.out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(iv.out, "%s: ", label)
	}

	line, err := iv.readLine()
	if err != nil {
		return "", err
	}
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

// ValidatedText asks a free-text question and re-issues the prompt with the
// validation reason until the answer passes.
func (iv *Interviewer) ValidatedText(label string, validate func(string) error) (string, error) {
	for {
		fmt.Fprintf(iv.out, "%s: ", label)

		line, err := iv.readLine()
		if err != nil {
			return "", err
		}
		if verr := validate(line); verr != nil {
			fmt.Fprintf(iv.out, "  %s\n", verr)
			continue
		}
		return line, nil
	}
}

// Select presents a numbered list and returns the value of the chosen item.
// A blank answer picks the default; an out-of-range answer re-issues the
// prompt.
func (iv *Interviewer) Select(label string, choices []Choice, defaultIdx int) (string, error) {
	for {
		fmt.Fprintf(iv.out, "\n%s\n", label)
		for i, c := range choices {
			marker := " "
			if i == defaultIdx {
				marker = "*"
			}
			if c.Description != "" {
				fmt.Fprintf(iv.out, " %s %d) %s - %s\n", marker, i+1, c.Name, c.Description)
			} else {
				fmt.Fprintf(iv.out, " %s %d) %s\n", marker, i+1, c.Name)
			}
		}
		fmt.Fprintf(iv.out, "Enter number [1-%d] (default %d): ", len(choices), defaultIdx+1)

		line, err := iv.readLine()
		if err != nil {
			return "", err
		}
		if line == "" {
			return choices[defaultIdx].Value, nil
		}

		num, convErr := strconv.Atoi(line)
		if convErr != nil || num < 1 || num > len(choices) {
			fmt.Fprintf(iv.out, "  invalid selection %q: choose 1-%d\n", line, len(choices))
			continue
		}
		return choices[num-1].Value, nil
	}
}

// MultiSelect presents a numbered list with default check marks. A blank
// answer keeps the defaults, "none" clears every selection, and otherwise
// the answer is a comma-separated list of numbers.
func (iv *Interviewer) MultiSelect(label string, choices []Choice) ([]string, error) {
	for {
		fmt.Fprintf(iv.out, "\n%s\n", label)
		for i, c := range choices {
			mark := " "
			if c.Checked {
				mark = "x"
			}
			fmt.Fprintf(iv.out, "  [%s] %d) %s - %s\n", mark, i+1, c.Name, c.Description)
		}
		fmt.Fprintf(iv.out, "Enter numbers separated by commas, 'none' for no selection (default: checked items): ")

		line, err := iv.readLine()
		if err != nil {
			return nil, err
		}

		if line == "" {
			var values []string
			for _, c := range choices {
				if c.Checked {
					values = append(values, c.Value)
				}
			}
			return values, nil
		}
		if strings.EqualFold(line, "none") {
			return nil, nil
		}

		values, parseErr := parseSelection(line, choices)
		if parseErr != nil {
			fmt.Fprintf(iv.out, "  %s\n", parseErr)
			continue
		}
		return values, nil
	}
}

// parseSelection converts a comma-separated list of 1-based numbers into
// choice values, rejecting duplicates implicitly by keeping first wins.
func parseSelection(line string, choices []Choice) ([]string, error) {
	seen := make(map[int]bool)
	var values []string

	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > len(choices) {
			return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", part, len(choices))
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		values = append(values, choices[num-1].Value)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d or 'none'", line, len(choices))
	}
	return values, nil
}
