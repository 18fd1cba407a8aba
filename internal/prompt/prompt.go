// Package prompt asks the user how many servers to probe.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/apex/log"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// CountMessage is the message we show when asking for the count.
const CountMessage = "Please enter the number of servers to test (press Enter for all servers):"

var (
	// ErrInterrupted indicates that the user interrupted the prompt.
	ErrInterrupted = errors.New("prompt: interrupted by user")

	// errNotPositive indicates that the answer is zero or negative.
	errNotPositive = errors.New("please enter a positive number")

	// errNotANumber indicates that the answer is not a number.
	errNotANumber = errors.New("please enter a valid number")
)

// Asker asks a question and returns the raw answer.
type Asker interface {
	Ask(message string) (string, error)
}

// AskCount asks for the number of servers to probe until the answer is
// either blank, in which case it returns total, or a positive integer,
// which it returns as is (the caller is in charge of clamping).
func AskCount(asker Asker, total int, logger log.Interface) (int, error) {
	for {
		answer, err := asker.Ask(CountMessage)
		if err != nil {
			return 0, err
		}
		count, err := ParseCount(answer, total)
		if err != nil {
			logger.Warnf("❌ %s", err.Error())
			continue
		}
		return count, nil
	}
}

// ParseCount parses an answer to the count question.
func ParseCount(answer string, total int) (int, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return total, nil
	}
	count, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errNotANumber
	}
	if count <= 0 {
		return 0, errNotPositive
	}
	return count, nil
}

// NewAsker returns a [*SurveyAsker] when the standard input is a
// terminal and a [*LineAsker] reading the standard input otherwise.
func NewAsker() Asker {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return &SurveyAsker{}
	}
	return NewLineAsker(os.Stdin, os.Stdout)
}

// SurveyAsker is an [Asker] using an interactive survey prompt.
type SurveyAsker struct{}

var _ Asker = &SurveyAsker{}

// Ask implements Asker.
func (*SurveyAsker) Ask(message string) (string, error) {
	prompt := &survey.Input{
		Message: message,
	}
	var answer string
	err := survey.AskOne(prompt, &answer)
	if errors.Is(err, terminal.InterruptErr) {
		return "", ErrInterrupted
	}
	return answer, err
}

// LineAsker is an [Asker] reading answers line by line, which is
// what we use when the standard input is not a terminal.
type LineAsker struct {
	reader *bufio.Reader
	writer io.Writer
}

var _ Asker = &LineAsker{}

// NewLineAsker creates a new [*LineAsker].
func NewLineAsker(r io.Reader, w io.Writer) *LineAsker {
	return &LineAsker{reader: bufio.NewReader(r), writer: w}
}

// Ask implements Asker. A final line without trailing newline is
// accepted; reaching EOF without reading anything is an error.
func (la *LineAsker) Ask(message string) (string, error) {
	fmt.Fprintf(la.writer, "%s ", message)
	line, err := la.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "reading answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
