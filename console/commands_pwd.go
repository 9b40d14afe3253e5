package console

import "fmt"

const (
	pwdCmd  = "pwd"
	pwdDesc = "Show current remote directory"
)

// PwdCommand implements the 'pwd' command
type PwdCommand struct{}

func (c *PwdCommand) Name() string        { return pwdCmd }
func (c *PwdCommand) Description() string { return pwdDesc }
func (c *PwdCommand) Usage() string       { return pwdCmd }

func (c *PwdCommand) Run(ctx *ExecutionContext, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("too many arguments")
	}
	ctx.UI().Printf("%s\r\n", ctx.session.remoteCwd)
	return nil
}
