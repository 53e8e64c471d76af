package abi

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		giveABI    string
		giveValues []any
		want       string
		wantError  bool
	}{
		{
			name:    "success: encode single uint256",
			giveABI: `[{"type":"uint256"}]`,
			giveValues: []any{
				big.NewInt(30), // 30 in uint256
			},
			want: "000000000000000000000000000000000000000000000000000000000000001e",
		},
		{
			name:       "success: encode address",
			giveABI:    `[{"type":"address"}]`,
			giveValues: []any{common.HexToAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")}, // valid Ethereum address,
			want:       "0000000000000000000000005b38da6a701c568545dcfcb03fcb875f56beddc4",
		},
		{
			name:       "success: encode string",
			giveABI:    `[{"type":"string"}]`,
			giveValues: []any{"Hello World"},
			want: "0000000000000000000000000000000000000000000000000000000000000020" + // offset (32 bytes)
				"000000000000000000000000000000000000000000000000000000000000000b" + // string length (11 bytes)
				"48656c6c6f20576f726c64000000000000000000000000000000000000000000", // "Hello World"
		},
		{
			name:      "failure: invalid ABI string",
			giveABI:   `[{"type":"invalid"}]`, // Invalid ABI type
			wantError: true,
		},
		{
			name:       "failure: invalid values",
			giveABI:    `[{"type":"uint256"}]`,
			giveValues: []any{}, // No values
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Encode(tt.giveABI, tt.giveValues...)

			if tt.wantError {
				require.Error(t, err)
			} else {
				wantBytes, err := hex.DecodeString(tt.want)
				require.NoError(t, err)

				require.NoError(t, err)
				assert.Equal(t, wantBytes, got)
			}
		})
	}
}

func Test_Keccak256(t *testing.T) {
	t.Parallel()

	got, err := Keccak256(`[{"type":"uint256"}]`, big.NewInt(30))
	require.NoError(t, err)

	want, err := hex.DecodeString("000000000000000000000000000000000000000000000000000000000000001e")
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256Hash(want), got)

	_, err = Keccak256(`[{"type":"uint256"}]`)
	require.Error(t, err)
}

func Test_Encode_Batch(t *testing.T) {
	t.Parallel()

	targets := []common.Address{common.HexToAddress("0x01"), common.HexToAddress("0x02")}
	values := []*big.Int{big.NewInt(0), big.NewInt(5)}
	calldatas := [][]byte{{0xc4, 0xd2, 0x52, 0xf5}, {0x01}}
	var salt [32]byte
	salt[31] = 0x07

	const batchABI = `[{"type":"address[]"},{"type":"uint256[]"},{"type":"bytes[]"},{"type":"bytes32"}]`
	encoded, err := Encode(batchABI, targets, values, calldatas, salt)
	require.NoError(t, err)

	// Three offsets for the dynamic arrays precede the static salt in the head.
	require.Greater(t, len(encoded), 4*32)
	assert.Equal(t, salt[:], encoded[3*32:4*32])
	assert.Equal(t, uint64(4*32), new(big.Int).SetBytes(encoded[:32]).Uint64())

	id, err := Keccak256(batchABI, targets, values, calldatas, salt)
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256Hash(encoded), id)
}
