package checks

import (
	"testing"

	"github.com/rdapconformance/rdapcv/internal/dataset"
	"github.com/rdapconformance/rdapcv/internal/profile"
	"github.com/rdapconformance/rdapcv/internal/rdap"
	"github.com/rdapconformance/rdapcv/internal/results"
	"github.com/stretchr/testify/assert"
)

func TestIPNetworkAddressFormat_SpecialPurposeAddress(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document:  map[string]any{"startAddress": "192.0.2.1", "endAddress": "192.0.2.10"},
		Results:   acc,
		QueryType: rdap.QueryIPNetwork,
		// Only 192.0.2.1 is a registry member (absent from the invalid map),
		// so it alone is flagged.
		Datasets: fakeService{datasets: map[string]fakeDataset{"ipv4SpecialRegistry": {invalid: map[string]bool{"192.0.2.10": true}}}},
	}

	ok := NewIPNetworkAddressFormat().DoValidate(ctx)

	assert.False(t, ok)
	require := acc.Results()
	if assert.Len(t, require, 1) {
		assert.Equal(t, -13400, require[0].Code)
	}
}

func TestIPNetworkAddressFormat_OrdinaryAddress(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document:  map[string]any{"startAddress": "203.0.113.1", "endAddress": "203.0.113.10"},
		Results:   acc,
		QueryType: rdap.QueryIPNetwork,
		// Neither address is a registry member, so nothing is flagged.
		Datasets: fakeService{datasets: map[string]fakeDataset{"ipv4SpecialRegistry": {invalid: map[string]bool{"203.0.113.1": true, "203.0.113.10": true}}}},
	}

	assert.True(t, NewIPNetworkAddressFormat().DoValidate(ctx))
	assert.Equal(t, 0, acc.Len())
}

func TestIPNetworkAddressFormat_MalformedAddressSkipped(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document:  map[string]any{"startAddress": "not-an-ip"},
		Results:   acc,
		QueryType: rdap.QueryIPNetwork,
		Datasets:  fakeService{datasets: map[string]fakeDataset{"ipv4SpecialRegistry": {invalid: map[string]bool{}}}},
	}

	assert.True(t, NewIPNetworkAddressFormat().DoValidate(ctx))
	assert.Equal(t, 0, acc.Len())
}

func TestNameserverIPAddressFormat_ChecksBothFamilies(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document: map[string]any{
			"ipAddresses": map[string]any{
				"v4": []any{"192.0.2.5"},
				"v6": []any{"2001:db8::1"},
			},
		},
		Results:   acc,
		QueryType: rdap.QueryNameserver,
		// A dataset that recognizes the address as a member flags it; an
		// empty invalid map means every lookup is a recognized member.
		Datasets: fakeService{datasets: map[string]fakeDataset{
			"ipv4SpecialRegistry": {invalid: map[string]bool{}},
			"ipv6SpecialRegistry": {invalid: map[string]bool{}},
		}},
	}

	ok := NewNameserverIPAddressFormat().DoValidate(ctx)

	assert.False(t, ok)
	assert.Equal(t, 2, acc.Len())
}

func TestNameserverIPAddressFormat_V6CheckedAgainstV6RegistryOnly(t *testing.T) {
	t.Parallel()
	acc := results.NewAccumulator()
	ctx := profile.CheckContext{
		Document: map[string]any{
			"ipAddresses": map[string]any{
				"v6": []any{"2001:db8::1"},
			},
		},
		Results:   acc,
		QueryType: rdap.QueryNameserver,
		Datasets: fakeService{datasets: map[string]fakeDataset{
			// The v4 registry would flag this address if it were consulted
			// for a v6 value (empty invalid map = always a recognized
			// member); the v6 registry marks it a non-member so it must not
			// be flagged when checked against its own family's registry.
			"ipv4SpecialRegistry": {invalid: map[string]bool{}},
			"ipv6SpecialRegistry": {invalid: map[string]bool{"2001:db8::1": true}},
		}},
	}

	ok := NewNameserverIPAddressFormat().DoValidate(ctx)

	assert.True(t, ok)
	assert.Equal(t, 0, acc.Len())
}

var _ dataset.Service = fakeService{}
