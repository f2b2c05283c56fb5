package known

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownAccounts(t *testing.T) {
	t.Parallel()

	devFund := "xrb_1ipx847tk8o46pwxt5qjdbncjqcbwcc1rrmqnkztrfjy5k7z4imsrata9est3"
	assert.Equal(t, "Developer Fund", AccountIDs[devFund])

	burn := "xrb_1111111111111111111111111111111111111111111111111111hifc8npp"
	assert.Equal(t, burn, AccountNames["Burn"])
}

func TestAccountTablesAreInverse(t *testing.T) {
	t.Parallel()

	require.Len(t, AccountNames, len(AccountIDs))

	for id, name := range AccountIDs {
		assert.Equal(t, id, AccountNames[name])
	}
}

func TestGenesisBlockHash(t *testing.T) {
	t.Parallel()

	assert.Len(t, GenesisBlockHash, 64)
	assert.Equal(t, AccountNames["Genesis"], "xrb_3t6k35gi95xu6tergt6p69ck76ogmitsa8mnijtpxm9fkcm736xtoncuohr3")
}
