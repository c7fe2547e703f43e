// Package app 基于 cobra 的命令行应用骨架：统一处理配置文件、日志、版本标志、
// 分节帮助以及错误码到进程退出码的映射。
package app

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	cliflag "github.com/maxiaolu1981/cretem/cmdopts/component-base/cli/flag"
	"github.com/maxiaolu1981/cretem/cmdopts/component-base/term"
	"github.com/maxiaolu1981/cretem/cmdopts/component-base/version"
	"github.com/maxiaolu1981/cretem/cmdopts/component-base/version/verflag"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
	"github.com/maxiaolu1981/cretem/cmdopts/help"
	"github.com/maxiaolu1981/cretem/cmdopts/log"
)

var progressMessage = color.GreenString("==>")

// errVersionPrinted 打印版本后终止命令执行，不视为失败
var errVersionPrinted = stderrors.New("version printed")

// App 一个命令行应用
type App struct {
	basename    string
	name        string
	description string
	options     CliOptions
	runFunc     RunFunc
	commands    []*Command
	args        cobra.PositionalArgs
	cmd         *cobra.Command
	silence     bool
	noVersion   bool
	noConfig    bool

	cfgFile       string
	viper         *viper.Viper
	version       verflag.Flag
	namedFlagSets cliflag.NamedFlagSets
}

// RunFunc 根命令的执行函数
type RunFunc func(basename string) error

// Option 应用的可选配置
type Option func(app *App)

// WithDescription 应用的详细说明
func WithDescription(description string) Option {
	return func(a *App) {
		a.description = description
	}
}

// WithOptions 从命令行和配置文件读取的应用配置
func WithOptions(opt CliOptions) Option {
	return func(a *App) {
		a.options = opt
	}
}

// WithRunFunc 根命令的执行函数
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.runFunc = run
	}
}

// WithCommands 添加子命令
func WithCommands(cmds ...*Command) Option {
	return func(a *App) {
		a.commands = append(a.commands, cmds...)
	}
}

// WithSilence 不输出启动信息和配置
func WithSilence() Option {
	return func(a *App) {
		a.silence = true
	}
}

// WithNoVersion 不提供 --version
func WithNoVersion() Option {
	return func(a *App) {
		a.noVersion = true
	}
}

// WithNoConfig 不提供 --config，也不读取配置文件
func WithNoConfig() Option {
	return func(a *App) {
		a.noConfig = true
	}
}

// WithArgs 根命令的位置参数校验
func WithArgs(args cobra.PositionalArgs) Option {
	return func(a *App) {
		a.args = args
	}
}

// WithDefaultValidArgs 根命令不接受位置参数
func WithDefaultValidArgs() Option {
	return func(a *App) {
		a.args = func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%q does not take any arguments, got %q", cmd.CommandPath(), args)
			}
			return nil
		}
	}
}

// NewApp 创建应用，basename 为程序名，同时用作配置文件名和环境变量前缀
func NewApp(basename string, name string, opts ...Option) *App {
	a := &App{
		basename: basename,
		name:     name,
		viper:    viper.New(),
	}
	for _, o := range opts {
		o(a)
	}
	a.buildCommand()
	return a
}

// Command 返回根 cobra 命令
func (a *App) Command() *cobra.Command { return a.cmd }

// Viper 返回应用使用的配置实例
func (a *App) Viper() *viper.Viper { return a.viper }

func (a *App) buildCommand() {
	cmd := &cobra.Command{
		Use:           FormatBaseName(a.basename),
		Short:         a.name,
		Long:          a.description,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          a.args,
	}
	cmd.Flags().SortFlags = true
	cmd.CompletionOptions.DisableDefaultCmd = true

	for _, command := range a.commands {
		c := command.cobraCommand()
		if c.Name() == "help" {
			// 替换 cobra 默认的 help 子命令
			cmd.SetHelpCommand(c)
			continue
		}
		cmd.AddCommand(c)
	}

	if a.options != nil {
		a.namedFlagSets = a.options.Flags()
	}
	global := a.namedFlagSets.FlagSet("global")
	if !a.noConfig {
		a.addConfigFlag(global)
	}
	if !a.noVersion {
		a.version.AddFlags(global)
	}
	addHelpFlag(a.basename, global)
	for _, name := range a.namedFlagSets.Order {
		cmd.PersistentFlags().AddFlagSet(a.namedFlagSets.FlagSets[name])
	}

	cmd.PersistentPreRunE = a.prepare
	cmd.RunE = a.runCommand
	a.addCmdTemplate(cmd)

	a.cmd = cmd
}

// prepare 在任何命令执行前加载配置、初始化日志并校验选项
func (a *App) prepare(cmd *cobra.Command, args []string) error {
	if !a.noVersion && a.version.Requested() {
		a.version.Print(cmd.OutOrStdout())
		return errVersionPrinted
	}

	if !a.noConfig {
		if err := a.loadConfig(); err != nil {
			return err
		}
	}
	if a.options == nil {
		return nil
	}

	for _, name := range a.namedFlagSets.Order {
		if err := a.viper.BindPFlags(a.namedFlagSets.FlagSets[name]); err != nil {
			return err
		}
	}
	if err := a.viper.Unmarshal(a.options); err != nil {
		return errors.WrapC(err, code.ErrLoadConfig, "decode configuration")
	}
	if err := a.applyOptionRules(); err != nil {
		return err
	}
	if loggable, ok := a.options.(LoggableOptions); ok {
		log.Init(loggable.LogOptions())
	}

	if !a.silence {
		log.Debugf("%v Starting %s", progressMessage, a.name)
		if !a.noVersion {
			log.Debugf("%v Version: %s", progressMessage, version.Get().ToJSON())
		}
		cliflag.PrintFlags(cmd.Flags())
		a.printConfig()
		if printable, ok := a.options.(PrintableOptions); ok {
			log.Debugf("%v Config: %s", progressMessage, printable.String())
		}
	}
	return nil
}

// applyOptionRules 补全并校验选项
func (a *App) applyOptionRules() error {
	if completeable, ok := a.options.(CompleteableOptions); ok {
		if err := completeable.Complete(); err != nil {
			return err
		}
	}
	return aggregate(a.options.Validate())
}

func (a *App) runCommand(cmd *cobra.Command, args []string) error {
	if a.runFunc != nil {
		return a.runFunc(a.basename)
	}
	return cmd.Help()
}

// addCmdTemplate 用 help 包渲染用法与帮助，行宽取终端宽度
func (a *App) addCmdTemplate(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return a.printUsage(c.OutOrStderr(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		w := c.OutOrStdout()
		long := c.Long
		if long == "" {
			long = c.Short
		}
		if long != "" {
			fmt.Fprintf(w, "%s\n\n", long)
		}
		_ = a.printUsage(w, c)
	})
}

func (a *App) printUsage(w io.Writer, c *cobra.Command) error {
	fmt.Fprintf(w, "%s\n  %s\n\n", color.CyanString("Usage:"), c.UseLine())
	return help.FprintWidth(w, a.usageSections(c), term.LineWidth(w, help.DefaultLineWidth))
}

func (a *App) usageSections(c *cobra.Command) []help.Section {
	var sections []help.Section
	if c.HasAvailableSubCommands() {
		commands := help.NewSection("Available commands")
		for _, sub := range c.Commands() {
			if sub.IsAvailableCommand() || sub.Name() == "help" {
				commands.Add(sub.Name(), sub.Short)
			}
		}
		sections = append(sections, commands)
	}
	if c == a.cmd {
		return append(sections, a.namedFlagSets.Sections().List()...)
	}
	if c.HasAvailableLocalFlags() {
		sections = append(sections, help.FromFlagSet("Flags", c.LocalFlags()))
	}
	if c.HasAvailableInheritedFlags() {
		sections = append(sections, help.FromFlagSet("Global flags", c.InheritedFlags()))
	}
	return sections
}

// Execute 以 args 运行应用并返回错误，不退出进程
func (a *App) Execute(args []string) error {
	if args == nil {
		args = []string{}
	}
	a.cmd.SetArgs(args)
	if err := a.cmd.Execute(); err != nil && !stderrors.Is(err, errVersionPrinted) {
		return err
	}
	return nil
}

// Run 运行应用，失败时输出错误并以错误码对应的退出码退出
func (a *App) Run() {
	err := a.Execute(os.Args[1:])
	log.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v %v\n", color.RedString("Error:"), err)
		os.Exit(ExitStatus(err))
	}
}

// ExitStatus 返回 err 对应的进程退出码：nil 为 0，未注册错误码的错误为 1
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	return errors.ParseCoder(err).ExitStatus()
}

func aggregate(errs []error) error {
	if agg := errors.NewAggregate(errs); agg != nil {
		return agg
	}
	return nil
}
