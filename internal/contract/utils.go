package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Change magnitude label constants.
const (
	MajorValue    = "Major"    // Major change
	LargeValue    = "Large"    // Large change
	ModerateValue = "Moderate" // Moderate change
	MinorValue    = "Minor"    // Minor change
)

// Color variables for console output.
var (
	MajorColor    = color.New(color.FgRed, color.Bold)     // majorColor represents standard danger.
	LargeColor    = color.New(color.FgMagenta, color.Bold) // largeColor represents strong, distinct warning.
	ModerateColor = color.New(color.FgYellow)              // moderateColor represents standard caution, not bold.
	MinorColor    = color.New(color.FgCyan)                // minorColor represents informational / low-priority signal.
)

// GetPlainLabel returns a plain text label indicating the change magnitude
// based on the total lines touched by a commit. This is the core logic used
// for JSON and table printing.
func GetPlainLabel(linesChanged int) string {
	switch {
	case linesChanged >= 500:
		return MajorValue
	case linesChanged >= 100:
		return LargeValue
	case linesChanged >= 20:
		return ModerateValue
	default:
		return MinorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(linesChanged int) string {
	text := GetPlainLabel(linesChanged)

	switch text {
	case MajorValue:
		return MajorColor.Sprint(text)
	case LargeValue:
		return LargeColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Minor"
		return MinorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateMessage shortens a commit message for table display.
func TruncateMessage(msg string, maxWidth int) string {
	if maxWidth <= 0 || len(msg) <= maxWidth {
		return msg
	}
	if maxWidth <= 3 {
		return msg[:maxWidth]
	}
	return strings.TrimSpace(msg[:maxWidth-3]) + "..."
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}
