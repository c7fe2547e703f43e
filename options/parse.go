package options

import (
	"github.com/google/shlex"

	"github.com/maxiaolu1981/cretem/cmdopts/errors"
)

// Parse 按 opts 解析 args（不含程序名），遇到未声明的参数即失败。
// 所有失败都以 *ParseError 返回。
func Parse(args []string, opts []Option) (*Values, error) {
	values, _, err := parse(args, opts, false)
	return values, err
}

// ParseAndCollectUnrecognized 同 Parse，但未声明的参数按原顺序收集到第二个返回值，
// 不计入任何选项，也不报错。返回的切片总是非 nil。
func ParseAndCollectUnrecognized(args []string, opts []Option) (*Values, []string, error) {
	return parse(args, opts, true)
}

// ParseString 按 shell 规则切分 line 后调用 Parse
func ParseString(line string, opts []Option) (*Values, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, errors.Wrapf(err, "split command line %q", line)
	}
	return Parse(args, opts)
}

func parse(args []string, opts []Option, collectUnrecognized bool) (*Values, []string, error) {
	values := newValues()
	var unrecognized []string
	if collectUnrecognized {
		unrecognized = []string{}
	}

	for i := 0; i < len(args); {
		// 报错时使用用户输入的拼写，而不是规范名
		name := args[i]
		i++

		opt, ok := FindOption(name, opts)
		if !ok {
			switch {
			case collectUnrecognized:
				unrecognized = append(unrecognized, name)
				continue
			case LooksLikeOptionName(name):
				return nil, nil, newParseError(UnrecognizedOption, name, "", 0)
			default:
				return nil, nil, newParseError(UnexpectedValue, name, "", 0)
			}
		}

		canonical := opt.CanonicalName()
		if opt.atLimit(len(values.slot(canonical))) {
			return nil, nil, newParseError(TooManyAppearances, name, "", opt.MaxAppearances())
		}

		if opt.NoParameter() {
			// 空串占位，使开关与带参数选项的计数方式一致
			values.append(canonical, "")
			continue
		}

		if i == len(args) {
			return nil, nil, newParseError(MissingParameter, name, "", 0)
		}
		param := args[i]
		i++
		if LooksLikeOptionName(param) {
			return nil, nil, newParseError(ParameterLooksLikeOption, name, param, 0)
		}
		values.append(canonical, param)
	}

	for _, opt := range opts {
		if opt.MinAppearances() == 0 {
			values.setIfAbsent(opt.CanonicalName(), opt.DefaultValues())
		}
	}

	return values, unrecognized, nil
}
