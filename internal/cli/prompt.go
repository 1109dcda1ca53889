package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter reads line-oriented answers from the user.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{r: bufio.NewReader(r), w: w}
}

// ask writes prompt and returns the next input line without its line ending.
// A final line without a newline is returned normally; io.EOF is returned
// only when no input is left at all.
func (p *prompter) ask(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.w, prompt)
	}

	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks for a confirmation token. Running out of input counts as an
// empty answer, which cancels.
func (p *prompter) confirm(prompt string) string {
	answer, err := p.ask(prompt)
	if err != nil {
		fmt.Fprintln(p.w)
		return ""
	}
	return answer
}
