package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/jmgilman/ghwatch/github"
	"github.com/jmgilman/ghwatch/internal/config"
)

// recordLabel picks the text rendering of a record.
type recordLabel func(github.Record) string

func loginLabel(r github.Record) string { return r.Login() }

func fullNameLabel(r github.Record) string {
	if name := r.FullName(); name != "" {
		return name
	}
	return r.String("name")
}

// writeRecords renders records to w in the given output format. Text output
// prints one label per line.
func writeRecords(w io.Writer, format string, records []github.Record, label recordLabel) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, records)
	case config.OutputYAML:
		return writeYAML(w, records)
	default:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, label(r)); err != nil {
				return err
			}
		}
		return nil
	}
}

// watchStatus is the structured form of the status command's answer.
type watchStatus struct {
	Repository string `json:"repository" yaml:"repository"`
	Watching   bool   `json:"watching" yaml:"watching"`
}

func writeStatus(w io.Writer, format string, status watchStatus) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, status)
	case config.OutputYAML:
		return writeYAML(w, status)
	default:
		text := "not watching"
		if status.Watching {
			text = "watching"
		}
		_, err := fmt.Fprintf(w, "%s: %s\n", status.Repository, text)
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode JSON output")
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode YAML output")
	}

	return enc.Close()
}

func statusOf(resp *github.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// reportError writes err to w. Structured formats emit the flat error
// response; text prints the message and any hint attached to the error.
func reportError(w io.Writer, format string, err error) error {
	switch format {
	case config.OutputJSON:
		return writeJSON(w, errors.ToJSON(err))
	case config.OutputYAML:
		return writeYAML(w, errors.ToJSON(err))
	default:
		if _, werr := fmt.Fprintln(w, "Error:", err); werr != nil {
			return werr
		}

		var platformErr errors.PlatformError
		if errors.As(err, &platformErr) {
			if hint, ok := platformErr.Context()["hint"].(string); ok && hint != "" {
				_, werr := fmt.Fprintln(w, "Hint:", hint)
				return werr
			}
		}
		return nil
	}
}
