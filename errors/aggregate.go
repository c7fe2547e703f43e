package errors

import (
	stderrors "errors"
	"strings"
)

// Aggregate 表示一组错误，例如一次校验中发现的多个缺失选项
type Aggregate interface {
	error
	Errors() []error
	Is(error) bool
}

// NewAggregate 过滤掉 nil 后把错误列表包装为 Aggregate，列表为空时返回 nil
func NewAggregate(errlist []error) Aggregate {
	var errs []error
	for _, e := range errlist {
		if e != nil {
			errs = append(errs, e)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return aggregate(errs)
}

type aggregate []error

// Error 去重后的消息，多个错误时以 [a, b] 形式输出
func (agg aggregate) Error() string {
	if len(agg) == 1 {
		return agg[0].Error()
	}
	seen := make(map[string]struct{}, len(agg))
	msgs := make([]string, 0, len(agg))
	agg.visit(func(err error) bool {
		msg := err.Error()
		if _, ok := seen[msg]; !ok {
			seen[msg] = struct{}{}
			msgs = append(msgs, msg)
		}
		return false
	})
	if len(msgs) == 1 {
		return msgs[0]
	}
	return "[" + strings.Join(msgs, ", ") + "]"
}

func (agg aggregate) Is(target error) bool {
	return agg.visit(func(err error) bool {
		return stderrors.Is(err, target)
	})
}

func (agg aggregate) Errors() []error { return []error(agg) }

// Unwrap 让标准库 errors.Is/As 可以遍历聚合中的每个错误
func (agg aggregate) Unwrap() []error { return []error(agg) }

func (agg aggregate) visit(f func(err error) bool) bool {
	for _, err := range agg {
		if nested, ok := err.(Aggregate); ok {
			for _, e := range nested.Errors() {
				if f(e) {
					return true
				}
			}
			continue
		}
		if f(err) {
			return true
		}
	}
	return false
}

// Flatten 把嵌套的 Aggregate 展开为一层
func Flatten(agg Aggregate) Aggregate {
	var result []error
	if agg == nil {
		return nil
	}
	for _, err := range agg.Errors() {
		if a, ok := err.(Aggregate); ok {
			if r := Flatten(a); r != nil {
				result = append(result, r.Errors()...)
			}
			continue
		}
		if err != nil {
			result = append(result, err)
		}
	}
	return NewAggregate(result)
}
