// Package optparse 实现 optparse 命令：按配置文件中的选项声明解析 shell 脚本的参数，
// 或者渲染这些选项的帮助文本。
package optparse

import (
	"io"

	"github.com/maxiaolu1981/cretem/cmdopts/component-base/term"
	"github.com/maxiaolu1981/cretem/cmdopts/help"
	"github.com/maxiaolu1981/cretem/cmdopts/options"
	"github.com/maxiaolu1981/cretem/cmdopts/pkg/app"
)

const commandDesc = `optparse parses the arguments of a shell script against the option
declarations found in its configuration file, and prints the result as JSON,
an aligned table or shell array assignments. It can also render the help text
of those options.

Put the arguments to parse after "--" so that they are not taken as optparse's
own flags.`

const configExample = `
  # optparse.yaml
  options:
    - names: ["--directory", "-d"]
      appearance: mandatory
      description: Data directory.
    - names: ["--port", "-p"]
      appearance: optional
      default: "8080"
    - names: ["--join", "-j"]
      appearance: optional_repeat
    - names: ["--verbose", "-v"]
      appearance: optional_no_parameter

  # eval "$(optparse parse -o shell -- "$@")"`

// NewApp 创建 optparse 应用
func NewApp(basename string) *app.App {
	opts := NewOptions()
	parseOpts := NewParseOptions()
	helpOpts := NewHelpOptions()

	parse := app.NewCommand("parse [flags] -- ARGS...",
		"Parse ARGS against the declared options.",
		app.WithCommandOptions(parseOpts),
		app.WithCommandLong("Parse ARGS against the declared options."+configExample),
		app.WithCommandRunFunc(func(out io.Writer, args []string) error {
			return runParse(out, opts, parseOpts, args)
		}),
	)
	helpCmd := app.NewCommand("help",
		"Print the help text of the declared options.",
		app.WithCommandOptions(helpOpts),
		app.WithCommandRunFunc(func(out io.Writer, args []string) error {
			return runHelp(out, opts, helpOpts)
		}),
	)

	return app.NewApp(basename, "Declarative option parser for shell scripts",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithCommands(parse, helpCmd),
	)
}

func runParse(out io.Writer, opts *Options, parseOpts *ParseOptions, args []string) error {
	decls, err := BuildOptions(opts.Declarations)
	if err != nil {
		return err
	}

	var result Result
	if parseOpts.CollectUnrecognized {
		result.Values, result.Unrecognized, err = options.ParseAndCollectUnrecognized(args, decls)
	} else {
		result.Values, err = options.Parse(args, decls)
	}
	if err != nil {
		return err
	}
	options.PrintValues(result.Values)

	if parseOpts.Require {
		if err := options.CheckRequired(decls, result.Values); err != nil {
			return err
		}
	}
	return render(out, parseOpts.Output, parseOpts.Prefix, result)
}

func runHelp(out io.Writer, opts *Options, helpOpts *HelpOptions) error {
	sections := BuildSections(opts.Sections)
	if len(sections) == 0 {
		section, err := GenerateSection(opts.Declarations)
		if err != nil {
			return err
		}
		sections = append(sections, section)
	}

	width := helpOpts.Width
	if width == 0 {
		width = term.LineWidth(out, help.DefaultLineWidth)
	}
	_, err := io.WriteString(out, help.FormatWidth(sections, width))
	return err
}
