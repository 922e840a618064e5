package checks

import (
	"testing"

	"github.com/rdapconformance/rdapcv/internal/dataset"
	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDataset struct {
	invalid map[string]bool
}

func (f fakeDataset) IsInvalid(value string) bool { return f.invalid[value] }

type fakeService struct {
	datasets map[string]fakeDataset
}

func (f fakeService) Get(name string) (dataset.Dataset, bool) {
	d, ok := f.datasets[name]
	return d, ok
}

func TestDomainHandle_MalformedHandle(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document:  map[string]any{"handle": "not a valid handle!"},
		Results:   acc,
		QueryType: rdap.QueryDomain,
		Datasets:  fakeService{datasets: map[string]fakeDataset{}},
	}

	c := NewDomainHandle()
	require.True(t, c.DoLaunch(ctx))
	ok := c.DoValidate(ctx)

	assert.False(t, ok)
	require.Equal(t, 1, acc.Len())
	assert.Equal(t, -10200, acc.Results()[0].Code)
}

func TestDomainHandle_UnregisteredROID(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document:  map[string]any{"handle": "ABC123-REG"},
		Results:   acc,
		QueryType: rdap.QueryDomain,
		Datasets:  fakeService{datasets: map[string]fakeDataset{"eppRoid": {invalid: map[string]bool{"REG": true}}}},
	}

	ok := NewDomainHandle().DoValidate(ctx)

	assert.False(t, ok)
	assert.Equal(t, -10201, acc.Results()[0].Code)
}

func TestDomainHandle_Valid(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document:  map[string]any{"handle": "ABC123-REG"},
		Results:   acc,
		QueryType: rdap.QueryDomain,
		Datasets:  fakeService{datasets: map[string]fakeDataset{"eppRoid": {invalid: map[string]bool{}}}},
	}

	ok := NewDomainHandle().DoValidate(ctx)

	assert.True(t, ok)
	assert.Equal(t, 0, acc.Len())
}

func TestDomainHandle_DoLaunch_GatedByQueryType(t *testing.T) {
	t.Parallel()
	c := NewNameserverHandle()
	assert.False(t, c.DoLaunch(profile.CheckContext{QueryType: rdap.QueryDomain}))
	assert.True(t, c.DoLaunch(profile.CheckContext{QueryType: rdap.QueryNameserver}))
}
