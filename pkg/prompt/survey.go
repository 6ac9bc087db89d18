package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Survey asks questions on a terminal.
type Survey struct {
	opts []survey.AskOpt
}

func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	return &Survey{
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

func (s *Survey) Input(message, def string, validate func(string) error) (string, error) {
	var answer string

	opts := append([]survey.AskOpt(nil), s.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(validator(validate)))
	}

	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...)
	return answer, translate(err)
}

func (s *Survey) Confirm(message string, def bool) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, s.opts...)
	return answer, translate(err)
}

func validator(validate func(string) error) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected text answer, got %T", ans)
		}
		return validate(s)
	}
}

func translate(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return err
}
