package minify

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/zerr"
)

// Transformer turns one JavaScript compilation unit into its minified form.
type Transformer interface {
	// Transform minifies code. name is only used in diagnostics.
	// It returns the minified code and any warnings as formatted text.
	Transform(name string, code []byte) ([]byte, []string, error)
}

// ESBuild is the default Transformer, backed by esbuild's transform API.
type ESBuild struct {
	// Target is the language level of the emitted code.
	Target api.Target
}

// NewESBuild returns an ESBuild transformer emitting ES5, the language level
// of the hello.js sources.
func NewESBuild() *ESBuild {
	return &ESBuild{Target: api.ES5}
}

// Transform minifies whitespace, identifiers and syntax. Legal comments such
// as the /*! banner are kept inline.
func (e *ESBuild) Transform(name string, code []byte) ([]byte, []string, error) {
	result := api.Transform(string(code), api.TransformOptions{
		Loader:            api.LoaderJS,
		Sourcefile:        name,
		Target:            e.Target,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
		LegalComments:     api.LegalCommentsInline,
	})

	warnings := api.FormatMessages(result.Warnings, api.FormatMessagesOptions{
		Kind: api.WarningMessage,
	})

	if len(result.Errors) > 0 {
		messages := api.FormatMessages(result.Errors, api.FormatMessagesOptions{
			Kind: api.ErrorMessage,
		})
		err := zerr.New(strings.TrimSpace(strings.Join(messages, "")))
		return nil, warnings, zerr.With(err, "errors", len(result.Errors))
	}

	return result.Code, warnings, nil
}
