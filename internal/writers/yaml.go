package writers

import (
	"io"

	"gopkg.in/yaml.v3"
)

func init() { Register("yaml", WriteYAML) }

// WriteYAML writes the run as v1 YAML.
func WriteYAML(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ToAPI(r)); err != nil {
		return err
	}
	return enc.Close()
}
