package app

import (
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Command 应用的子命令
type Command struct {
	usage    string
	desc     string
	long     string
	options  CliOptions
	commands []*Command
	runFunc  RunCommandFunc
}

// CommandOption 子命令的可选配置
type CommandOption func(*Command)

// RunCommandFunc 子命令的执行函数，out 为命令的标准输出
type RunCommandFunc func(out io.Writer, args []string) error

// WithCommandOptions 子命令专属的标志
func WithCommandOptions(opt CliOptions) CommandOption {
	return func(c *Command) {
		c.options = opt
	}
}

// WithCommandRunFunc 设置子命令的执行函数
func WithCommandRunFunc(run RunCommandFunc) CommandOption {
	return func(c *Command) {
		c.runFunc = run
	}
}

// WithCommandLong 子命令的详细说明
func WithCommandLong(long string) CommandOption {
	return func(c *Command) {
		c.long = long
	}
}

// NewCommand 创建子命令，usage 的第一个单词为命令名
func NewCommand(usage string, desc string, opts ...CommandOption) *Command {
	c := &Command{
		usage: usage,
		desc:  desc,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// AddCommand 添加下级子命令
func (c *Command) AddCommand(cmd *Command) {
	c.commands = append(c.commands, cmd)
}

// AddCommands 添加多个下级子命令
func (c *Command) AddCommands(cmds ...*Command) {
	c.commands = append(c.commands, cmds...)
}

func (c *Command) cobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.usage,
		Short: c.desc,
		Long:  c.long,
	}
	cmd.Flags().SortFlags = false
	for _, command := range c.commands {
		cmd.AddCommand(command.cobraCommand())
	}
	if c.runFunc != nil {
		cmd.RunE = c.runCommand
	}
	if c.options != nil {
		fss := c.options.Flags()
		for _, name := range fss.Order {
			cmd.Flags().AddFlagSet(fss.FlagSets[name])
		}
	}
	addHelpCommandFlag(c.usage, cmd.Flags())

	return cmd
}

func (c *Command) runCommand(cmd *cobra.Command, args []string) error {
	if c.options != nil {
		if completeable, ok := c.options.(CompleteableOptions); ok {
			if err := completeable.Complete(); err != nil {
				return err
			}
		}
		if err := aggregate(c.options.Validate()); err != nil {
			return err
		}
	}
	return c.runFunc(cmd.OutOrStdout(), args)
}

// FormatBaseName 把程序名转为小写，并去掉 Windows 下的 .exe 后缀
func FormatBaseName(name string) string {
	if runtime.GOOS == "windows" {
		name = strings.ToLower(name)
		name = strings.TrimSuffix(name, ".exe")
	}
	return name
}
