package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// NamedSections 按标题管理多个分节，并记录添加顺序
type NamedSections struct {
	Order    []string
	Sections map[string]*Section
}

// Section 返回标题为 title 的分节，不存在时创建并追加到 Order
func (nss *NamedSections) Section(title string) *Section {
	if nss.Sections == nil {
		nss.Sections = map[string]*Section{}
	}
	if _, ok := nss.Sections[title]; !ok {
		nss.Sections[title] = &Section{Title: title}
		nss.Order = append(nss.Order, title)
	}
	return nss.Sections[title]
}

// List 按添加顺序返回非空分节
func (nss NamedSections) List() []Section {
	sections := make([]Section, 0, len(nss.Order))
	for _, title := range nss.Order {
		s := nss.Sections[title]
		if s == nil || len(s.Lines) == 0 {
			continue
		}
		sections = append(sections, *s)
	}
	return sections
}

// PrintSections 按添加顺序打印所有非空分节，各分节共用同一语法列宽。
// cols 为总行宽，不大于 0 时使用 DefaultLineWidth。
func PrintSections(w io.Writer, nss NamedSections, cols int) error {
	if cols <= 0 {
		cols = DefaultLineWidth
	}
	_, err := io.WriteString(w, FormatWidth(nss.List(), cols))
	return err
}

// FromFlagSet 把 pflag 标志集中的可见标志转换为一个帮助分节。
// 语法列形如 "--name, -n <type>"，开关类标志不带类型；
// 说明取 Usage，非零默认值以 "(default ...)" 附在末尾。
func FromFlagSet(title string, fs *pflag.FlagSet) Section {
	section := Section{Title: title}
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		varname, usage := pflag.UnquoteUsage(f)

		syntax := "--" + f.Name
		if f.Shorthand != "" {
			syntax += ", -" + f.Shorthand
		}
		if varname != "" {
			syntax += " <" + varname + ">"
		}

		if !zeroDefault(f) {
			if f.Value.Type() == "string" {
				usage += fmt.Sprintf(" (default %q)", f.DefValue)
			} else {
				usage += fmt.Sprintf(" (default %s)", f.DefValue)
			}
		}
		if f.Deprecated != "" {
			usage += " (DEPRECATED: " + f.Deprecated + ")"
		}
		section.Add(syntax, strings.TrimSpace(usage))
	})
	return section
}

func zeroDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "false", "0", "[]", "<nil>":
		return true
	}
	return false
}
