package console

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// Console drives the interactive loop over a raw-mode terminal
type Console struct {
	Term      *term.Terminal
	InitState *term.State
	Output    *log.Logger
	session   *Session
	registry  *CommandRegistry
	username  string
}

// NewConsole wires a session to a terminal console with the full
// command set registered. onLogout clears any persisted login state
// and may be nil.
func NewConsole(session *Session, onLogout func() error) *Console {
	c := &Console{
		session:  session,
		registry: initCommands(onLogout),
		username: session.dav.Username(),
	}
	return c
}

func initCommands(onLogout func() error) *CommandRegistry {
	registry := NewCommandRegistry()

	registry.Register(&LsCommand{})
	registry.Register(&CdCommand{})
	registry.Register(&PwdCommand{})
	registry.Register(&GetCommand{})
	registry.Register(&PutCommand{})
	registry.Register(&MkdirCommand{})
	registry.Register(&RmCommand{})
	registry.Register(&RmdirCommand{})
	registry.Register(&CpCommand{})
	registry.Register(&MvCommand{})
	registry.Register(&LocalLsCommand{})
	registry.Register(&LocalPwdCommand{})
	registry.Register(&LocalCdCommand{})
	registry.Register(&HelpCommand{})
	registry.Register(&ClearCommand{})
	registry.Register(&ExitCommand{})
	registry.Register(&LogoutCommand{onLogout: onLogout})

	registry.RegisterAlias("dir", lsCmd)
	registry.RegisterAlias("delete", rmCmd)
	registry.RegisterAlias("copy", cpCmd)
	registry.RegisterAlias("move", mvCmd)
	registry.RegisterAlias("quit", exitCmd)

	return registry
}

// Run takes over the terminal until exit or EOF
func (c *Console) Run() error {
	// Initialize Term
	c.InitState, _ = term.MakeRaw(int(os.Stdin.Fd()))
	defer func() {
		_ = term.Restore(int(os.Stdin.Fd()), c.InitState)
	}()

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}

	c.Term = term.NewTerminal(screen, "")
	c.Output = log.New(c.Term, "", 0)

	// Simple autocompletion
	c.Term.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
		// If TAB key is pressed and text was written
		if key == 9 && len(line) > 0 && !strings.Contains(line, " ") {
			newLine, newPos := c.registry.Autocomplete(line)
			return newLine, newPos, true
		}
		return line, pos, false
	}

	if width, height, tErr := term.GetSize(int(os.Stdin.Fd())); tErr == nil {
		// Disregard the error if fails setting Console size
		_ = c.Term.SetSize(width, height)
	}

	c.PrintInfo("Connected as %s", c.username)
	c.PrintInfo("Type \"help\" for available commands, \"exit\" to quit")

	c.Term.SetPrompt(c.getPrompt())

	ctx := NewExecutionContext(c.session, c, c.registry)

	for {
		input, rErr := c.Term.ReadLine()
		if rErr != nil {
			if rErr != io.EOF {
				c.PrintError("Failed to read input: %v", rErr)
				return rErr
			}
			// From 'term' documentation, CTRL^C as well as CTRL^D return:
			// line, error = "", io.EOF
			c.Printf("\r\n")
			return nil
		}

		cmdParts := fieldsWithQuotes(input)
		if len(cmdParts) < 1 || cmdParts[0] == "" {
			continue
		}
		command := strings.ToLower(cmdParts[0])
		args := cmdParts[1:]

		if rErr := c.registry.Execute(ctx, command, args); rErr != nil {
			if errors.Is(rErr, ErrExitConsole) {
				return nil
			}
			c.PrintError("%v", rErr)
		}

		// The cwd may have changed, and commands reset their own prompt
		// after confirmation reads
		c.Term.SetPrompt(c.getPrompt())
	}
}

// fieldsWithQuotes splits a command line on spaces while keeping
// double-quoted segments together, so names with spaces survive.
func fieldsWithQuotes(input string) []string {
	quoted := false
	fields := strings.FieldsFunc(input, func(r rune) bool {
		if r == '"' {
			quoted = !quoted
		}
		return !quoted && r == ' '
	})
	newFields := make([]string, 0)
	for _, item := range fields {
		newFields = append(newFields, strings.ReplaceAll(item, "\"", ""))
	}
	return newFields
}
