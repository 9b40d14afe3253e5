package console

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"davsh/pkg/escseq"
)

const (
	helpCmd    = "help"
	helpDesc   = "Show available commands"
	exitCmd    = "exit"
	exitDesc   = "Close the session and exit"
	clearCmd   = "clear"
	clearDesc  = "Clear the screen"
	logoutCmd  = "logout"
	logoutDesc = "Forget the saved session and exit"
)

// HelpCommand implements the 'help' command
type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return helpCmd }
func (c *HelpCommand) Description() string { return helpDesc }
func (c *HelpCommand) Usage() string       { return helpCmd }

func (c *HelpCommand) Run(ctx *ExecutionContext, _ []string) error {
	ui := ctx.UI()

	tw := new(tabwriter.Writer)
	tw.Init(ui.Writer(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "\n\tCommand\tDescription\t")
	_, _ = fmt.Fprintf(tw, "\n\t-------\t-----------\t\n")

	// Get primary commands with their aliases
	primaryCommands := ctx.registry.GetPrimaryCommands()

	var cmdNames []string
	for cmdName := range primaryCommands {
		cmdNames = append(cmdNames, cmdName)
	}
	sort.Strings(cmdNames)

	for _, cmdName := range cmdNames {
		if cmd, ok := ctx.registry.Get(cmdName); ok {
			aliases := primaryCommands[cmdName]
			aliasStr := strings.Join(aliases, ", ")
			_, _ = fmt.Fprintf(tw, "\t%s\t%s\t\n", aliasStr, cmd.Description())
		}
	}

	_, _ = fmt.Fprintln(tw)
	_ = tw.Flush()
	return nil
}

// ExitCommand implements the 'exit' command
type ExitCommand struct{}

func (c *ExitCommand) Name() string        { return exitCmd }
func (c *ExitCommand) Description() string { return exitDesc }
func (c *ExitCommand) Usage() string       { return exitCmd }
func (c *ExitCommand) Run(_ *ExecutionContext, _ []string) error {
	return ErrExitConsole
}

// LogoutCommand implements the 'logout' command
type LogoutCommand struct {
	onLogout func() error
}

func (c *LogoutCommand) Name() string        { return logoutCmd }
func (c *LogoutCommand) Description() string { return logoutDesc }
func (c *LogoutCommand) Usage() string       { return logoutCmd }
func (c *LogoutCommand) Run(ctx *ExecutionContext, _ []string) error {
	if c.onLogout != nil {
		if err := c.onLogout(); err != nil {
			ctx.UI().PrintWarn("Failed to clear saved session: %v", err)
		} else {
			ctx.UI().PrintInfo("Saved session cleared")
		}
	}
	return ErrExitConsole
}

// ClearCommand implements the 'clear' command
type ClearCommand struct{}

func (c *ClearCommand) Name() string        { return clearCmd }
func (c *ClearCommand) Description() string { return clearDesc }
func (c *ClearCommand) Usage() string       { return clearCmd }
func (c *ClearCommand) Run(ctx *ExecutionContext, _ []string) error {
	_, _ = ctx.UI().Writer().Write([]byte(escseq.ClearScreen()))
	return nil
}
