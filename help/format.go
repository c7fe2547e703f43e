package help

import (
	"strings"
)

const (
	// minSummaryWidth 说明列的最小宽度，语法列很长时也不会被挤得过窄
	minSummaryWidth = 30
	// gutter 语法列前后各两个空格
	gutter = 2
)

// Format 以 DefaultLineWidth 为总行宽渲染 sections
func Format(sections []Section) string {
	return FormatWidth(sections, DefaultLineWidth)
}

// FormatWidth 以 lineWidth 为总行宽渲染 sections。
//
// 语法列宽取所有分节中最长的语法描述，说明列宽为 max(30, lineWidth-语法列宽)。
// 每个分节输出 "<标题>:" 行，然后逐行输出两个空格、补齐到缩进宽度的语法描述
// 以及说明的第一行，说明的后续行只缩进不带语法，分节末尾追加一个空行。
func FormatWidth(sections []Section, lineWidth int) string {
	maxSyntax := 0
	for _, section := range sections {
		for _, line := range section.Lines {
			if w := displayWidth(line.Syntax); w > maxSyntax {
				maxSyntax = w
			}
		}
	}

	summaryWidth := lineWidth - maxSyntax
	if summaryWidth < minSummaryWidth {
		summaryWidth = minSummaryWidth
	}
	indentWidth := maxSyntax + 2*gutter
	indent := strings.Repeat(" ", indentWidth)

	var b strings.Builder
	for _, section := range sections {
		b.WriteString(section.Title)
		b.WriteString(":\n")

		for _, line := range section.Lines {
			for i, part := range WordWrap(line.Blurb, summaryWidth) {
				if i == 0 {
					b.WriteString(strings.Repeat(" ", gutter))
					b.WriteString(line.Syntax)
					b.WriteString(strings.Repeat(" ", indentWidth-gutter-displayWidth(line.Syntax)))
				} else {
					b.WriteString(indent)
				}
				b.WriteString(part)
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
