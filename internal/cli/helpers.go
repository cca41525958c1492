package cli

import (
	"fmt"
	"io"

	"github.com/Fuabioo/errdemo/internal/diag"
	"github.com/fatih/color"
)

const successMessage = "Yay: success!!"

var (
	isTerminal = diag.IsTerminal

	successStyle = []color.Attribute{color.FgGreen, color.Bold}
	failureStyle = []color.Attribute{color.FgRed}
)

// getExitCode maps an error to the process exit code.
func getExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// printSuccess prints the success banner to w.
func printSuccess(w io.Writer, allowColor bool) {
	fmt.Fprintf(w, "\n%s\n\n", paint(successStyle, w, allowColor, successMessage))
}

// printError prints a failure banner for err to w.
func printError(w io.Writer, err error, allowColor bool) {
	msg := fmt.Sprintf("Failure: %v", err)
	fmt.Fprintf(w, "\n%s\n\n", paint(failureStyle, w, allowColor, msg))
}

// paint colours s only when colour is allowed and w is a terminal.
func paint(style []color.Attribute, w io.Writer, allowColor bool, s string) string {
	if !allowColor || !isTerminal(w) {
		return s
	}
	c := color.New(style...)
	c.EnableColor()
	return c.Sprint(s)
}
