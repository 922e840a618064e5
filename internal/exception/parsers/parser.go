// Package parsers holds the exception taxonomy's sixteen leaf parsers. Each
// parser owns exactly one exception.Category, builds the coded Result for a
// matching Leaf, and always also runs the validation-name wrapper pass -
// mirroring how every concrete ExceptionParser subclass in the original
// validator works, regardless of which leaf kind it handles.
package parsers

import (
	"log/slog"

	"github.com/rdapconformance/rdapcv/internal/exception"
	"github.com/rdapconformance/rdapcv/internal/jsonpointer"
	"github.com/rdapconformance/rdapcv/internal/results"
	"github.com/rdapconformance/rdapcv/internal/schema"
)

// unparsedErrorCode is the sentinel code logged when a leaf's governing
// schema declares no errorCode annotation anywhere in its ancestor chain -
// the same catch-all the original validator returns from
// parseErrorCode's catch block.
const unparsedErrorCode = -999

// Context bundles everything a Parser needs to turn a Leaf into a Result.
type Context struct {
	Tree     *schema.Tree
	Document any
	Results  *results.Accumulator
	Logger   *slog.Logger
}

// Parser owns one exception.Category.
type Parser interface {
	Matches(l exception.Leaf) bool
	Parse(ctx Context, l exception.Leaf)
}

// base implements the logic every parser shares: resolve the governing
// errorCode, render the instance value, add the Result, and run the
// validation-name wrapper pass. describe renders the category-specific
// portion of the message.
type base struct {
	category exception.Category
	describe func(exception.Leaf) string
}

func (b base) Matches(l exception.Leaf) bool { return l.Category == b.category }

func (b base) Parse(ctx Context, l exception.Leaf) {
	code := unparsedErrorCode
	if v, err := ctx.Tree.SearchBottomMostErrorCode(l.Pointer, "errorCode"); err == nil {
		if n, ok := toInt(v); ok {
			code = n
		}
	} else if ctx.Logger != nil {
		ctx.Logger.Info("no errorCode annotation for leaf exception", "pointer", l.Pointer, "category", b.category.String())
	}

	value, _ := jsonpointer.Query(ctx.Document, l.Pointer)
	valueStr := renderValue(value)

	ctx.Results.Add(results.Result{
		Code:    code,
		Value:   l.Pointer + ":" + valueStr,
		Message: b.describe(l),
	})

	exception.RunValidationWrapperPass(ctx.Tree, l.Pointer, valueStr, ctx.Results)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	default:
		return toString(t)
	}
}
