package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/fcb2b-project/fcb2b-go/pkg/client"
	"github.com/fcb2b-project/fcb2b-go/pkg/display"
)

func stderrPrintLnf(message string, args ...interface{}) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	_, err := fmt.Fprintf(os.Stderr, message, args...)
	return err
}

// parseParamFlags turns repeated key=value flags into a parameter map,
// reporting every malformed pair at once.
func parseParamFlags(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	var result *multierror.Error

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			result = multierror.Append(result, fmt.Errorf("invalid --param %q: expected key=value", pair))
			continue
		}
		params[key] = value
	}

	return params, result.ErrorOrNil()
}

// printResponse renders a service response the way the interactive tester
// does: pretty, colorized XML for 2xx answers, the raw body otherwise.
func printResponse(out io.Writer, resp *client.ServiceResponse) {
	fmt.Fprintln(out, "\n--- Response ---")
	fmt.Fprintf(out, "HTTP %d\n", resp.StatusCode)
	if resp.OK() {
		fmt.Fprintln(out, "\n--- XML Response ---")
		fmt.Fprintln(out, display.ColorizeXML(display.PrettyXML(string(resp.Body))))
		return
	}
	fmt.Fprintln(out, "\n--- Raw Response ---")
	fmt.Fprintln(out, string(resp.Body))
}
