package bencode

import (
	"bytes"
	"testing"

	jackpal "github.com/jackpal/bencode-go"
	"github.com/stretchr/testify/require"
)

// Fixtures decoded by both this package and jackpal/bencode-go must agree
// after both trees are normalized to plain interface values.
func TestAgreesWithJackpal(t *testing.T) {
	fixtures := []string{
		"i3228e",
		"i-3228e",
		"4:spam",
		"l4:spam4:eggse",
		"d3:cow3:moo4:spam4:eggse",
		"d8:intervali1800e5:peersld2:ip8:10.0.0.14:porti6881eeee",
		"d8:announce35:http://tracker.example.com:6969/ann4:infod6:lengthi1048576e4:name8:file.bin12:piece lengthi262144eee",
	}

	for _, fixture := range fixtures {
		t.Run(fixture, func(t *testing.T) {
			ours, rest, err := Decode([]byte(fixture))
			require.NoError(t, err)
			require.Empty(t, rest)

			theirs, err := jackpal.Decode(bytes.NewReader([]byte(fixture)))
			require.NoError(t, err)

			require.Equal(t, theirs, toJSONValue(ours))
		})
	}
}
