package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"davsh/pkg/conf"
	"davsh/pkg/escseq"

	"golang.org/x/term"
)

func (c *Console) getPrompt() string {
	return fmt.Sprintf(
		"\r%s:%s%s ",
		c.username,
		c.session.RemoteCwd(),
		escseq.CyanBoldText("$"),
	)
}

// PrintInfo displays an informational message with [*] prefix
func (c *Console) PrintInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.Output.Printf(
		"\r[%s] %s\r\n",
		escseq.BlueBrightBoldText("*"),
		msg,
	)
}

// PrintWarn displays a warning message with [!] prefix
func (c *Console) PrintWarn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.Output.Printf(
		"\r[%s] %s\r\n",
		escseq.YellowBrightText("!"),
		msg,
	)
}

// PrintError displays an error message with [-] prefix
func (c *Console) PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.Output.Printf(
		"\r[%s] %s\r\n",
		escseq.RedBoldText("-"),
		msg,
	)
}

// PrintSuccess displays a success message with [+] prefix
func (c *Console) PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.Output.Printf(
		"\r[%s] %s\r\n",
		escseq.GreenBoldText("+"),
		msg,
	)
}

func (c *Console) Printf(format string, args ...interface{}) {
	c.Output.Printf(fmt.Sprintf("\r%s", format), args...)
}

// Writer returns the underlying writer for structured output
func (c *Console) Writer() io.Writer {
	return c.Term
}

// Width returns the usable terminal width in columns
func (c *Console) Width() int {
	if width, _, tErr := term.GetSize(int(os.Stdin.Fd())); tErr == nil && width > 0 {
		return width
	}
	return conf.DefaultTerminalWidth
}

// Confirm asks a yes/no question on the terminal. An empty answer
// yields defaultYes. An interrupt (CTRL^C / CTRL^D) surfaces as an
// error so the running command can abort without killing the console.
func (c *Console) Confirm(prompt string, defaultYes bool) (bool, error) {
	currentPrompt := c.getPrompt()
	c.Term.SetPrompt("")
	defer c.Term.SetPrompt(currentPrompt)

	for {
		_, _ = fmt.Fprintf(c.Term, "\r%s", prompt)
		input, rErr := c.Term.ReadLine()
		if rErr != nil {
			return false, fmt.Errorf("aborted")
		}
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
