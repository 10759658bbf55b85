package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var errInputClosed = errors.New("input closed")

type prompter struct {
	r   *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(in), out: out}
}

// ask prints label and returns the next input line without its line ending.
// Lines have no length limit. A final line without a newline is still returned.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// askParsed repeats the prompt until parse accepts the answer.
func askParsed[T any](p *prompter, label string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := p.ask(label)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		fmt.Fprintf(p.out, msgBadNumber, line)
	}
}

// askOptional is askParsed where a blank answer yields nil.
func askOptional[T any](p *prompter, label string, parse func(string) (T, error)) (*T, error) {
	for {
		line, err := p.ask(label)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			return nil, nil
		}
		v, err := parse(line)
		if err == nil {
			return &v, nil
		}
		fmt.Fprintf(p.out, msgBadNumber, line)
	}
}

func parseQuantity(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// parsePrice accepts a comma as decimal separator.
func parsePrice(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("price %q is not a finite number", s)
	}
	return v, nil
}
