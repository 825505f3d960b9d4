package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/token"
)

func NewPathBuilder() *yaml.PathBuilder {
	return &yaml.PathBuilder{}
}

// Error represents a YAML error. It includes the original error, and either
// the [*yaml.Path] or the [*token.Token] where the error occurred.
type Error struct {
	Err    error
	Path   *yaml.Path
	Token  *token.Token
	Source []byte // Optional, used to annotate path errors.
}

func (e Error) Error() string {
	if e.Err == nil {
		return ""
	}

	switch {
	case e.Token != nil:
		return fmt.Sprintf("[%d:%d] %v", e.Token.Position.Line, e.Token.Position.Column, e.Err)

	case e.Path != nil:
		msg := fmt.Sprintf("error at %s: %v", e.Path.String(), e.Err)
		if len(e.Source) == 0 {
			return msg
		}

		annotated, err := e.Path.AnnotateSource(e.Source, false)
		if err != nil {
			return msg
		}

		return msg + "\n" + string(annotated)
	}

	return e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

// WithSource attaches source to err if it is an [*Error], so path errors
// can be rendered next to the offending lines.
func WithSource(err error, source []byte) error {
	yamlErr, ok := err.(*Error) //nolint:errorlint // Only direct errors are annotated.
	if !ok {
		return err
	}

	yamlErr.Source = source

	return yamlErr
}
