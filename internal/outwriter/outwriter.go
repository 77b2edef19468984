// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/mrsummary/internal/contract"
	"golang.org/x/term"
)

// WritePayload writes a rendered payload to the output file, or stdout when
// no file is configured. Writing the payload out is the adapter's job; the
// core only produces the string.
func WritePayload(payload string, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, payload)
		return err
	}, "Wrote output")
}

// WriteJSONPayload encodes data as indented JSON to the output file or stdout.
func WriteJSONPayload(data any, outputFile string) error {
	return writeWithFile(outputFile, func(w io.Writer) error {
		return writeJSON(w, data)
	}, "Wrote JSON")
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// GetMaxMessageWidth calculates the maximum width for commit messages in
// table output based on terminal width.
func GetMaxMessageWidth(widthOverride int) int {
	termWidth := widthOverride

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for hash, date, churn and impact columns with borders
	// and padding.
	available := termWidth - 45
	if available < 20 {
		return 20
	}
	if available > 72 {
		return 72
	}
	return available
}
