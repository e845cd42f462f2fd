package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umbra-zone/umbra/modules/core/02-client/types"
	"github.com/umbra-zone/umbra/modules/core/exported"
)

func TestFormatClientIdentifier(t *testing.T) {
	require.Equal(t, "07-tendermint-0", types.FormatClientIdentifier(exported.Tendermint, 0))
	require.Equal(t, "07-tendermint-42", types.FormatClientIdentifier(exported.Tendermint, 42))
}

func TestParseClientIdentifier(t *testing.T) {
	testCases := []struct {
		name       string
		clientID   string
		clientType string
		sequence   uint64
		expPass    bool
	}{
		{"valid tendermint client", "07-tendermint-7", "07-tendermint", 7, true},
		{"valid no hyphen in type", "clientnew-1", "clientnew", 1, true},
		{"high sequence", "07-tendermint-18446744073709551615", "07-tendermint", 18446744073709551615, true},
		{"missing sequence", "07-tendermint", "", 0, false},
		{"negative sequence", "07-tendermint--1", "", 0, false},
		{"invalid format", "no/separators", "", 0, false},
		{"blank id", "   ", "", 0, false},
		{"empty id", "", "", 0, false},
	}

	for _, tc := range testCases {
		clientType, sequence, err := types.ParseClientIdentifier(tc.clientID)

		if tc.expPass {
			require.NoError(t, err, tc.name)
			require.Equal(t, tc.clientType, clientType, tc.name)
			require.Equal(t, tc.sequence, sequence, tc.name)
			require.True(t, types.IsValidClientID(tc.clientID), tc.name)
		} else {
			require.Error(t, err, tc.name)
			require.False(t, types.IsValidClientID(tc.clientID), tc.name)
		}
	}
}

func TestValidateClientType(t *testing.T) {
	testCases := []struct {
		name       string
		clientType string
		expPass    bool
	}{
		{"tendermint client type", exported.Tendermint, true},
		{"blank client type", " ", false},
		{"empty client type", "", false},
		{"slashes in client type", "07/tendermint", false},
		{"too large client type", "client-type-which-is-far-too-long-to-ever-construct-a-valid-identifier-from", false},
	}

	for _, tc := range testCases {
		err := types.ValidateClientType(tc.clientType)

		if tc.expPass {
			require.NoError(t, err, tc.name)
		} else {
			require.Error(t, err, tc.name)
		}
	}
}
