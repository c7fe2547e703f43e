package help

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// widthCondition 固定按非东亚环境计算宽度，渲染结果不随 LANG/LC_ALL 变化
var widthCondition = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

func displayWidth(s string) int {
	return widthCondition.StringWidth(s)
}

// SplitBySpaces 按连续空白切分，空串或全空白返回空切片
func SplitBySpaces(s string) []string {
	return strings.FieldsFunc(s, unicode.IsSpace)
}

// WordWrap 贪心地把单词装入宽度不超过 width 的行，同一行的单词以单个空格分隔。
// 超过 width 的单词独占一行，不做截断。
// 没有任何单词时返回恰好一个空行，保证每个帮助行至少占一行输出。
func WordWrap(s string, width int) []string {
	var (
		lines        []string
		current      strings.Builder
		currentWidth int
	)
	for _, word := range SplitBySpaces(s) {
		w := displayWidth(word)
		switch {
		case current.Len() == 0:
			current.WriteString(word)
			currentWidth = w
		case currentWidth+1+w <= width:
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + w
		default:
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			currentWidth = w
		}
	}
	return append(lines, current.String())
}
