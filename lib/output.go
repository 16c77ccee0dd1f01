package lib

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Pformat renders v as yaml, as indented json on a terminal, or as compact
// json otherwise.
func Pformat(v any, asYaml bool) (string, error) {
	if asYaml {
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		data, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := marshalNoEscape(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
