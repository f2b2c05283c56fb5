// Package known holds static reference data for the network: well-known
// account labels and the genesis block hash. The tables are built once at
// process start and never mutated, so they are safe for concurrent reads.
package known

// GenesisBlockHash is the hash of the network's genesis open block.
const GenesisBlockHash = "991CF190094C00F0B68E2E5F75F6BEE95A2E0BD93CEAA4A6734DB9F19B728948"

// AccountIDs maps well-known account addresses to their human-readable names.
var AccountIDs = map[string]string{
	"xrb_1111111111111111111111111111111111111111111111111111hifc8npp": "Burn",
	"xrb_1ipx847tk8o46pwxt5qjdbncjqcbwcc1rrmqnkztrfjy5k7z4imsrata9est3": "Developer Fund",
	"xrb_13ezf4od79h1tgj9aiu4djzcmmguendtjfuhwfukhuucboua8cpoihmh8byo":  "Landing",
	"xrb_35jjmmmh81kydepzeuf9oec8hzkay7msr6yxagzxpcht7thwa5bus5tomgz9":  "Faucet",
	"xrb_3t6k35gi95xu6tergt6p69ck76ogmitsa8mnijtpxm9fkcm736xtoncuohr3":  "Genesis",
}

// AccountNames is the inverse of AccountIDs, name to address.
var AccountNames = make(map[string]string, len(AccountIDs))

func init() {
	for id, name := range AccountIDs {
		AccountNames[name] = id
	}
}
