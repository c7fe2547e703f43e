// Package help 把「语法 / 说明」行组成的分节帮助渲染为定宽、自动换行、列对齐的文本。
//
// 渲染只依赖调用方给出的字符串，与 options 包的解析过程无关；
// 任何输入（包括空分节、空说明）都会得到确定的输出，不返回错误。
package help

import (
	"io"
)

// DefaultLineWidth Format 使用的总行宽
const DefaultLineWidth = 79

// Line 一行帮助：左列是语法描述，右列是可换行的说明
type Line struct {
	Syntax string
	Blurb  string
}

// Section 带标题的一组帮助行
type Section struct {
	Title string
	Lines []Line
}

// NewSection 按给定顺序创建分节
func NewSection(title string, lines ...Line) Section {
	return Section{Title: title, Lines: append([]Line{}, lines...)}
}

// Add 追加一行
func (s *Section) Add(syntax, blurb string) {
	s.Lines = append(s.Lines, Line{Syntax: syntax, Blurb: blurb})
}

// Fprint 把 Format 的结果写入 w
func Fprint(w io.Writer, sections []Section) error {
	return FprintWidth(w, sections, DefaultLineWidth)
}

// FprintWidth 按给定总行宽渲染后写入 w
func FprintWidth(w io.Writer, sections []Section, lineWidth int) error {
	_, err := io.WriteString(w, FormatWidth(sections, lineWidth))
	return err
}
