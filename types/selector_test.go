package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gotestassert "gotest.tools/v3/assert"
)

func TestSelectorFromSignature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		signature string
		want      string
	}{
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"approve(address,uint256)", "0x095ea7b3"},
		{"cancel(bytes32)", "0xc4d252f5"},
	}

	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			t.Parallel()

			gotestassert.Equal(t, tt.want, SelectorFromSignature(tt.signature).String())
		})
	}
}

func TestSelectorOf(t *testing.T) {
	t.Parallel()

	s, err := SelectorOf([]byte{0xa9, 0x05, 0x9c, 0xbb, 0x01})
	require.NoError(t, err)
	assert.Equal(t, SelectorFromSignature("transfer(address,uint256)"), s)

	_, err = SelectorOf([]byte{0x01, 0x02})
	require.ErrorIs(t, err, ErrCalldataTooShort)
}

func TestSelector_JSON(t *testing.T) {
	t.Parallel()

	in := map[Selector]string{SelectorFromSignature("cancel(bytes32)"): "cancel"}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"0xc4d252f5":"cancel"}`, string(b))

	var out map[Selector]string
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	var s Selector
	require.Error(t, json.Unmarshal([]byte(`"0x01"`), &s))
}
