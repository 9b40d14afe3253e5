package console

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"davsh/pkg/webdav"
)

// ErrExitConsole indicates the console should exit
var ErrExitConsole = errors.New("exit console")

// Dav is the transport surface commands operate through. The concrete
// implementation is webdav.Client; tests substitute an in-memory fake.
type Dav interface {
	Username() string
	Propfind(p string) ([]webdav.Record, error)
	Get(p string) (io.ReadCloser, int64, error)
	Put(p string, body io.Reader, size int64) (int, error)
	Mkcol(p string) (int, error)
	Delete(p string) (int, error)
	Copy(src, dst string, overwrite bool) (int, error)
	Move(src, dst string, overwrite bool) (int, error)
}

// Session holds the state shared across commands: the transport and
// both working directories. The remote cwd is written only by a
// successful cd.
type Session struct {
	dav       Dav
	remoteCwd string
	localCwd  string
}

// NewSession starts a session rooted at the remote tree root
func NewSession(dav Dav, localCwd string) *Session {
	return &Session{
		dav:       dav,
		remoteCwd: "/",
		localCwd:  localCwd,
	}
}

// RemoteCwd returns the tracked remote working directory
func (s *Session) RemoteCwd() string {
	return s.remoteCwd
}

// ExecutionContext carries what a command needs to run
type ExecutionContext struct {
	session  *Session
	ui       UserInterface
	registry *CommandRegistry
}

// NewExecutionContext pairs a session with a user interface
func NewExecutionContext(session *Session, ui UserInterface, registry *CommandRegistry) *ExecutionContext {
	return &ExecutionContext{session: session, ui: ui, registry: registry}
}

// UI returns the user interface for displaying output
func (ctx *ExecutionContext) UI() UserInterface {
	return ctx.ui
}

// Command interface defines the structure for all console commands
type Command interface {
	Name() string
	Description() string
	Usage() string
	// Run executes the command with the given arguments
	Run(ctx *ExecutionContext, args []string) error
}

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	commands map[string]Command
	aliases  map[string][]string
}

// NewCommandRegistry creates a new CommandRegistry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]Command),
		aliases:  make(map[string][]string),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
	r.aliases[cmd.Name()] = []string{cmd.Name()}
}

// RegisterAlias maps an extra name onto an already registered command
func (r *CommandRegistry) RegisterAlias(alias, name string) {
	if cmd, ok := r.commands[name]; ok {
		r.commands[alias] = cmd
		r.aliases[name] = append(r.aliases[name], alias)
	}
}

// Get retrieves a command by name or alias
func (r *CommandRegistry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns a sorted list of command names including aliases
func (r *CommandRegistry) List() []string {
	var names []string
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPrimaryCommands returns primary command names mapped to the list
// of every name that reaches them
func (r *CommandRegistry) GetPrimaryCommands() map[string][]string {
	primary := make(map[string][]string, len(r.aliases))
	for name, aliases := range r.aliases {
		primary[name] = aliases
	}
	return primary
}

// Execute runs a command if found
func (r *CommandRegistry) Execute(ctx *ExecutionContext, name string, args []string) error {
	if cmd, ok := r.commands[name]; ok {
		return cmd.Run(ctx, args)
	}
	return fmt.Errorf("unknown command: %s (type \"help\" for available commands)", name)
}

// Autocomplete suggests commands based on input
func (r *CommandRegistry) Autocomplete(input string) (string, int) {
	var cmd string
	var substring string
	var count int

	cmdList := r.List()
	for _, c := range cmdList {
		if strings.HasPrefix(c, input) {
			cmd = c
			substring = strings.SplitAfter(c, input)[0]
			count++
		} else if count == 1 {
			return cmd, len(cmd)
		}
	}

	if count == 1 {
		return cmd, len(cmd)
	}

	if count == 0 {
		substring = input
	}

	return substring, len(substring)
}
