package optparse

import (
	"fmt"
	"strings"

	cliflag "github.com/maxiaolu1981/cretem/cmdopts/component-base/cli/flag"
	"github.com/maxiaolu1981/cretem/cmdopts/component-base/json"
	"github.com/maxiaolu1981/cretem/cmdopts/log"
)

// Options optparse 的全局配置，选项声明和帮助分节只能来自配置文件
type Options struct {
	Log          *log.Options    `json:"log" mapstructure:"log"`
	Declarations []Declaration   `json:"options" mapstructure:"options"`
	Sections     []SectionConfig `json:"sections" mapstructure:"sections"`
}

// NewOptions 返回默认配置
func NewOptions() *Options {
	return &Options{Log: log.NewOptions()}
}

// Flags 全局标志
func (o *Options) Flags() (fss cliflag.NamedFlagSets) {
	o.Log.AddFlags(fss.FlagSet("log"))
	return fss
}

// Validate 校验日志配置和全部选项声明
func (o *Options) Validate() []error {
	errs := o.Log.Validate()
	if _, err := BuildOptions(o.Declarations); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// LogOptions 日志配置
func (o *Options) LogOptions() *log.Options { return o.Log }

func (o *Options) String() string {
	data, _ := json.Marshal(o)
	return string(data)
}

const (
	outputJSON  = "json"
	outputTable = "table"
	outputShell = "shell"
)

// ParseOptions parse 子命令的标志
type ParseOptions struct {
	CollectUnrecognized bool
	Require             bool
	Output              string
	Prefix              string
}

// NewParseOptions 默认以 JSON 输出
func NewParseOptions() *ParseOptions {
	return &ParseOptions{Output: outputJSON}
}

func (o *ParseOptions) Flags() (fss cliflag.NamedFlagSets) {
	fs := fss.FlagSet("parse")
	fs.BoolVar(&o.CollectUnrecognized, "collect-unrecognized", o.CollectUnrecognized,
		"Collect undeclared arguments instead of failing.")
	fs.BoolVar(&o.Require, "require", o.Require,
		"Fail when a mandatory option was not given.")
	fs.StringVarP(&o.Output, "output", "o", o.Output,
		"Output `FORMAT` of the parse result, one of json, table or shell.")
	fs.StringVar(&o.Prefix, "prefix", o.Prefix,
		"`PREFIX` prepended to variable names in shell output.")
	return fss
}

func (o *ParseOptions) Validate() []error {
	var errs []error
	switch strings.ToLower(o.Output) {
	case outputJSON, outputTable, outputShell:
	default:
		errs = append(errs, fmt.Errorf("not a valid output format: %q", o.Output))
	}
	if o.Prefix != "" && !isShellName(o.Prefix) {
		errs = append(errs, fmt.Errorf("not a valid shell variable prefix: %q", o.Prefix))
	}
	return errs
}

// HelpOptions help 子命令的标志
type HelpOptions struct {
	Width int
}

func NewHelpOptions() *HelpOptions {
	return &HelpOptions{}
}

func (o *HelpOptions) Flags() (fss cliflag.NamedFlagSets) {
	fss.FlagSet("help").IntVarP(&o.Width, "width", "w", o.Width,
		"Total line `WIDTH`; 0 uses the terminal width, or 79 when not writing to a terminal.")
	return fss
}

func (o *HelpOptions) Validate() []error {
	if o.Width < 0 {
		return []error{fmt.Errorf("--width must not be negative, got %d", o.Width)}
	}
	return nil
}
