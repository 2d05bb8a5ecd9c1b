// Copyright (C) 2025, ovpn-dev. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressStringRoundTrip(t *testing.T) {
	require := require.New(t)

	addrs := []Address{
		EmptyAddress,
		CreateAddress("counter"),
		CreateAddress("calculator"),
		ToAddress([]byte{0xff, 0x01, 0x02}),
	}
	for _, addr := range addrs {
		parsed, err := StringToAddress(addr.String())
		require.NoError(err)
		require.Equal(addr, parsed)
	}
}

func TestStringToAddressInvalid(t *testing.T) {
	tests := map[string]string{
		"NotBase58":   "0OIl+/",
		"WrongLength": "2g",
		"Empty":       "",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := StringToAddress(input)
			require.ErrorIs(t, err, ErrInvalidAddress)
		})
	}
}

func TestCreateAddressDeterministic(t *testing.T) {
	require := require.New(t)

	require.Equal(CreateAddress("counter"), CreateAddress("counter"))
	require.NotEqual(CreateAddress("counter"), CreateAddress("calculator"))
	require.NotEqual(EmptyAddress, CreateAddress("counter"))
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)

	addr := CreateAddress("counter")

	addrJSONBytes, err := json.Marshal(addr)
	require.NoError(err)

	var parsedAddr Address
	require.NoError(json.Unmarshal(addrJSONBytes, &parsedAddr))
	require.Equal(addr, parsedAddr)

	require.ErrorIs(parsedAddr.UnmarshalText([]byte("!!!")), ErrInvalidAddress)
}
