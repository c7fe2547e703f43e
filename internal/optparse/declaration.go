package optparse

import (
	"fmt"
	"strings"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
	"github.com/maxiaolu1981/cretem/cmdopts/help"
	"github.com/maxiaolu1981/cretem/cmdopts/options"
)

// Declaration 配置文件中的一个选项声明
//
//	options:
//	  - names: ["--port", "-p"]
//	    appearance: optional
//	    default: "8080"
//	    description: Port to listen on.
type Declaration struct {
	Names       []string `json:"names" mapstructure:"names"`
	Appearance  string   `json:"appearance" mapstructure:"appearance"`
	Default     *string  `json:"default,omitempty" mapstructure:"default"`
	Defaults    []string `json:"defaults,omitempty" mapstructure:"defaults"`
	Description string   `json:"description,omitempty" mapstructure:"description"`
}

// SectionConfig 配置文件中的一个帮助分节
type SectionConfig struct {
	Title string       `json:"title" mapstructure:"title"`
	Lines []LineConfig `json:"lines" mapstructure:"lines"`
}

// LineConfig 帮助分节中的一行
type LineConfig struct {
	Syntax string `json:"syntax" mapstructure:"syntax"`
	Blurb  string `json:"blurb" mapstructure:"blurb"`
}

func (d Declaration) defaults() []string {
	var values []string
	if d.Default != nil {
		values = append(values, *d.Default)
	}
	return append(values, d.Defaults...)
}

// Option 把声明转换为 options.Option。
// 声明来自用户的配置文件，因此这里返回错误而不是让构造函数 panic。
func (d Declaration) Option() (options.Option, error) {
	if len(d.Names) == 0 {
		return options.Option{}, errors.WithCode(code.ErrInvalidDeclaration, "option declared without any name")
	}
	for _, name := range d.Names {
		if strings.TrimSpace(name) == "" {
			return options.Option{}, errors.WithCode(code.ErrInvalidDeclaration,
				"option %v: names must not be blank", d.Names)
		}
	}

	appearance := options.Optional
	if d.Appearance != "" {
		a, err := options.ParseAppearance(d.Appearance)
		if err != nil {
			return options.Option{}, errors.WrapC(err, code.ErrInvalidDeclaration, "option %v", d.Names)
		}
		appearance = a
	}

	names := options.NewNames(d.Names[0], d.Names[1:]...)
	defaults := d.defaults()
	switch {
	case len(defaults) == 0:
		return options.New(names, appearance), nil
	case appearance != options.Optional && appearance != options.OptionalRepeat:
		return options.Option{}, errors.WithCode(code.ErrInvalidDeclaration,
			"option %v: a default value is only allowed for %s and %s, not %s",
			d.Names, options.Optional, options.OptionalRepeat, appearance)
	case appearance == options.Optional && len(defaults) > 1:
		return options.Option{}, errors.WithCode(code.ErrInvalidDeclaration,
			"option %v: %s accepts at most one default value, got %d", d.Names, options.Optional, len(defaults))
	}
	return options.NewWithDefaults(names, appearance, defaults...), nil
}

// BuildOptions 按顺序转换所有声明，收集全部错误后一起返回
func BuildOptions(decls []Declaration) ([]options.Option, error) {
	opts := make([]options.Option, 0, len(decls))
	var errs []error
	for _, d := range decls {
		opt, err := d.Option()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		opts = append(opts, opt)
	}
	if agg := errors.NewAggregate(errs); agg != nil {
		return nil, agg
	}
	return opts, nil
}

// BuildSections 把配置中的帮助分节转换为 help.Section
func BuildSections(configs []SectionConfig) []help.Section {
	sections := make([]help.Section, 0, len(configs))
	for _, c := range configs {
		s := help.NewSection(c.Title)
		for _, l := range c.Lines {
			s.Add(l.Syntax, l.Blurb)
		}
		sections = append(sections, s)
	}
	return sections
}

// GenerateSection 没有配置帮助分节时，根据声明生成一个 "Options" 分节
func GenerateSection(decls []Declaration) (help.Section, error) {
	opts, err := BuildOptions(decls)
	if err != nil {
		return help.Section{}, err
	}

	section := help.NewSection("Options")
	for i, opt := range opts {
		syntax := strings.Join(opt.Names(), ", ")
		if !opt.NoParameter() {
			syntax += " <value>"
		}
		section.Add(syntax, describe(decls[i].Description, opt))
	}
	return section, nil
}

func describe(description string, opt options.Option) string {
	var notes []string
	if opt.Mandatory() {
		notes = append(notes, "required")
	}
	if opt.MaxAppearances() == options.Unbounded {
		notes = append(notes, "may be repeated")
	}
	if defaults := opt.DefaultValues(); len(defaults) > 0 {
		notes = append(notes, fmt.Sprintf("default: %s", strings.Join(defaults, " ")))
	}
	if len(notes) == 0 {
		return description
	}
	return strings.TrimSpace(description + " (" + strings.Join(notes, ", ") + ")")
}
