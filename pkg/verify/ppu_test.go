package verify_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clforge/clforge/pkg/verify"
)

func TestParsePPU(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		in             string
		wantFormat     verify.Format
		wantPlate      string
		wantNormalized string
		wantNumeric    uint32
		wantVerifier   verify.Verifier
	}{
		{"four consonants", "PHZF55", verify.FormatLLLLNN, "PHZF55", "069455", 69455, 'K'},
		{"old motorcycle", "bbc12", verify.FormatLLLNN, "BBC012", "112012", 112012, '3'},
		{"two letter series", "AB-1234", verify.FormatLLNNNN, "AB1234", "011234", 11234, '8'},
		{"canonical", "069455", verify.FormatNNNNNN, "069455", "069455", 69455, 'K'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := verify.ParsePPU(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.in, p.Raw())
			assert.Equal(t, tt.wantFormat, p.Format())
			assert.Equal(t, tt.wantPlate, p.Plate())
			assert.Equal(t, tt.wantNormalized, p.Normalized())
			assert.Equal(t, tt.wantNumeric, p.Numeric())
			assert.Equal(t, tt.wantVerifier, p.Verifier())
			assert.Equal(t, tt.wantNormalized+"-"+tt.wantVerifier.String(), p.Complete())
			assert.Equal(t, p.Complete(), p.String())
		})
	}
}

func TestParsePPU_VerifierInvariant(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"PHZF55", "BBC12", "BBC123", "AB1234", "KK9999", "ZZZZ99", "000000"} {
		p, err := verify.ParsePPU(in)
		require.NoError(t, err)

		want, err := verify.Checksum(uint64(p.Numeric()))
		require.NoError(t, err)
		assert.Equal(t, want, p.Verifier(), "stored verifier of %q", in)

		numeric, err := verify.ParseNumeric(p.Normalized())
		require.NoError(t, err)
		assert.Equal(t, numeric, p.Numeric())
	}
}

func TestParsePPU_Errors(t *testing.T) {
	t.Parallel()

	_, err := verify.ParsePPU("AB#1234")
	assert.ErrorIs(t, err, verify.ErrUnknownFormat)

	_, err = verify.ParsePPU("AEIO12")
	assert.ErrorIs(t, err, verify.ErrUnknownLetter)

	p, err := verify.ParsePPU("ZZ1234")
	assert.ErrorIs(t, err, verify.ErrUnknownDigraph)
	assert.Equal(t, verify.PPU{}, p)
}

func TestPPU_JSON(t *testing.T) {
	t.Parallel()

	p, err := verify.ParsePPU("phzf-55")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "phzf-55", got["raw"])
	assert.Equal(t, "LLLLNN", got["format"])
	assert.Equal(t, "PHZF55", got["plate"])
	assert.Equal(t, "069455", got["normalized"])
	assert.InDelta(t, 69455, got["numeric"], 0)
	assert.Equal(t, "K", got["verifier"])
	assert.Equal(t, "069455-K", got["complete"])
}

func FuzzParsePPU(f *testing.F) {
	for _, seed := range []string{"PHZF55", "bbc12", "AB-1234", "069455", "", "ｂｂｃ１２", "A·B·1·2·3·4"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		p, err := verify.ParsePPU(raw)
		if err != nil {
			var verr *verify.Error
			require.ErrorAs(t, err, &verr)
			assert.False(t, verr.Kind.Internal())
			return
		}

		assert.Len(t, p.Normalized(), verify.CanonicalLength)

		again, err := verify.NormalizePPU(p.Normalized())
		require.NoError(t, err)
		assert.Equal(t, p.Normalized(), again)

		want, err := verify.Checksum(uint64(p.Numeric()))
		require.NoError(t, err)
		assert.Equal(t, want, p.Verifier())
	})
}
