package checks

import (
	"testing"

	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/results"
	"github.com/stretchr/testify/assert"
)

func validNotices() []any {
	return []any{
		map[string]any{
			"title": "Status Codes",
			"links": []any{map[string]any{"href": "https://icann.org/epp"}},
		},
		map[string]any{
			"title": "RDDS Inaccuracy Complaint Form",
			"links": []any{map[string]any{"href": "https://icann.org/wicf"}},
		},
	}
}

func TestNotices_AllPresent(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{Document: map[string]any{"notices": validNotices()}, Results: acc}

	assert.True(t, NewNotices().DoValidate(ctx))
	assert.Equal(t, 0, acc.Len())
}

func TestNotices_MissingOne(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document: map[string]any{"notices": []any{validNotices()[0]}},
		Results:  acc,
	}

	ok := NewNotices().DoValidate(ctx)

	assert.False(t, ok)
	require := acc.Results()
	if assert.Len(t, require, 1) {
		assert.Equal(t, -20700, require[0].Code)
	}
}

func TestNotices_NoNoticesAtAll(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{Document: map[string]any{}, Results: acc}

	ok := NewNotices().DoValidate(ctx)

	assert.False(t, ok)
	assert.Equal(t, 2, acc.Len())
}
