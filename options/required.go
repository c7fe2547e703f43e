package options

import (
	"github.com/maxiaolu1981/cretem/cmdopts/errors"
)

// CheckRequired 检查每个必选选项至少出现一次。
// Parse 本身不做这项检查，需要时由调用方在解析后调用。
// 所有缺失的选项合并为一个 errors.Aggregate 返回，每个元素都是 *ParseError。
func CheckRequired(opts []Option, values *Values) error {
	var errs []error
	for _, opt := range opts {
		if opt.MinAppearances() == 0 {
			continue
		}
		if values.Count(opt.CanonicalName()) < opt.MinAppearances() {
			errs = append(errs, newParseError(MissingOption, opt.CanonicalName(), "", 0))
		}
	}
	if agg := errors.NewAggregate(errs); agg != nil {
		return agg
	}
	return nil
}
