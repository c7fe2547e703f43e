// Package flag
// sectioned.go
// 按名称组织多个 pflag.FlagSet，并借助 help 包把它们打印为分节、列对齐的帮助信息。
package flag

import (
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/maxiaolu1981/cretem/cmdopts/help"
)

// NamedFlagSets 按名称存储多个标志集，并记录添加顺序
type NamedFlagSets struct {
	Order    []string
	FlagSets map[string]*pflag.FlagSet
}

// FlagSet 获取指定名称的标志集，不存在时创建并追加到 Order
func (nfs *NamedFlagSets) FlagSet(name string) *pflag.FlagSet {
	if nfs.FlagSets == nil {
		nfs.FlagSets = map[string]*pflag.FlagSet{}
	}
	if _, ok := nfs.FlagSets[name]; !ok {
		nfs.FlagSets[name] = pflag.NewFlagSet(name, pflag.ExitOnError)
		nfs.Order = append(nfs.Order, name)
	}
	return nfs.FlagSets[name]
}

// Sections 把每个标志集转换为标题形如 "Global flags" 的帮助分节
func (nfs NamedFlagSets) Sections() help.NamedSections {
	var nss help.NamedSections
	for _, name := range nfs.Order {
		fs := nfs.FlagSets[name]
		if fs == nil || !fs.HasFlags() {
			continue
		}
		title := sectionTitle(name)
		section := help.FromFlagSet(title, fs)
		nss.Section(title).Lines = section.Lines
	}
	return nss
}

// PrintSections 按添加顺序打印所有非空标志集，cols 为总行宽
func PrintSections(w io.Writer, nfs NamedFlagSets, cols int) error {
	return help.PrintSections(w, nfs.Sections(), cols)
}

func sectionTitle(name string) string {
	if name == "" {
		return "Flags"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " flags"
}
