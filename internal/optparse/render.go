package optparse

import (
	"fmt"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/gosuri/uitable"

	"github.com/maxiaolu1981/cretem/cmdopts/code"
	"github.com/maxiaolu1981/cretem/cmdopts/component-base/json"
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
	"github.com/maxiaolu1981/cretem/cmdopts/options"
)

// Result 一次解析的输出
type Result struct {
	Values       *options.Values `json:"values"`
	Unrecognized []string        `json:"unrecognized,omitempty"`
}

func render(w io.Writer, format, prefix string, r Result) error {
	switch strings.ToLower(format) {
	case outputTable:
		return renderTable(w, r)
	case outputShell:
		return renderShell(w, prefix, r)
	default:
		return renderJSON(w, r)
	}
}

func renderJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func renderTable(w io.Writer, r Result) error {
	table := uitable.New()
	table.Separator = "  "
	table.MaxColWidth = 80
	table.AddRow("OPTION", "COUNT", "VALUES")
	for _, name := range r.Values.Names() {
		vals, _ := r.Values.Get(name)
		table.AddRow(name, len(vals), strings.Join(vals, " "))
	}
	for _, arg := range r.Unrecognized {
		table.AddRow("(unrecognized)", 1, arg)
	}
	_, err := fmt.Fprintln(w, table)
	return err
}

// renderShell 每个选项输出一行 bash 数组赋值，如 PORT=(8080)。
// 两个选项映射到同一个变量名时返回错误，不输出任何内容。
func renderShell(w io.Writer, prefix string, r Result) error {
	var b strings.Builder
	owners := make(map[string]string, r.Values.Len()+1)
	claim := func(variable, owner string) error {
		if prev, ok := owners[variable]; ok {
			return errors.WithCode(code.ErrShellNameConflict,
				"options '%s' and '%s' both map to shell variable %s", prev, owner, variable)
		}
		owners[variable] = owner
		return nil
	}

	for _, name := range r.Values.Names() {
		variable := prefix + shellName(name)
		if err := claim(variable, name); err != nil {
			return err
		}
		vals, _ := r.Values.Get(name)
		writeArray(&b, variable, vals)
	}
	if r.Unrecognized != nil {
		variable := prefix + "UNRECOGNIZED"
		if err := claim(variable, "(unrecognized)"); err != nil {
			return err
		}
		writeArray(&b, variable, r.Unrecognized)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeArray(b *strings.Builder, name string, vals []string) {
	b.WriteString(name)
	b.WriteString("=(")
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(shellescape.Quote(v))
	}
	b.WriteString(")\n")
}

// shellName 去掉前导 '-'，其余非字母数字字符替换为 '_'，并转为大写
func shellName(option string) string {
	trimmed := strings.TrimLeft(option, "-")
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, trimmed)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "_" + name
	}
	return name
}

func isShellName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}

