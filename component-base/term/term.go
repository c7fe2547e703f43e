// Package term
// term.go
// 终端相关工具：获取终端尺寸，帮助文本据此决定换行宽度。
package term

import (
	"fmt"
	"io"

	"github.com/moby/term"
)

// TerminalSize 返回 w 所在终端的宽度和高度。w 不是终端或获取失败时返回错误。
// 通常传入 os.Stdout。
func TerminalSize(w io.Writer) (int, int, error) {
	outFd, isTerminal := term.GetFdInfo(w)
	if !isTerminal {
		return 0, 0, fmt.Errorf("given writer is no terminal")
	}
	winsize, err := term.GetWinsize(outFd)
	if err != nil {
		return 0, 0, err
	}
	return int(winsize.Width), int(winsize.Height), nil
}

// IsTerminal 判断 w 是否连接到终端
func IsTerminal(w io.Writer) bool {
	_, isTerminal := term.GetFdInfo(w)
	return isTerminal
}

// LineWidth 返回帮助文本可用的行宽：终端时为终端宽度减一（避免在最后一列自动折行），
// 否则返回 fallback。
func LineWidth(w io.Writer, fallback int) int {
	cols, _, err := TerminalSize(w)
	if err != nil || cols <= 1 {
		return fallback
	}
	return cols - 1
}
