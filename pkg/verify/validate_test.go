package verify_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clforge/clforge/pkg/verify"
)

var verifierAlphabet = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "K"}

func TestValidateRUT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		digits   uint32
		verifier string
		want     bool
		wantKind verify.Kind
	}{
		{"valid", 12345678, "5", true, 0},
		{"wrong digit", 12345678, "6", false, 0},
		{"wrong zero", 12345678, "0", false, 0},
		{"wrong k", 12345678, "K", false, 0},
		{"lower k accepted", 69455, "k", true, 0},
		{"upper k accepted", 69455, "K", true, 0},
		{"short rut", 1, "9", true, 0},
		{"empty verifier", 0, "", false, verify.KindEmptyVerifier},
		{"malformed verifier", 1, "10", false, verify.KindInvalidVerifier},
		{"letter verifier", 1, "X", false, verify.KindInvalidVerifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := verify.ValidateRUT(tt.digits, tt.verifier)
			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, verify.KindOf(err))
				assert.ErrorIs(t, err, verify.ErrVerifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRUT_AgreesWithChecksum(t *testing.T) {
	t.Parallel()

	for x := uint32(0); x < 30_000_000; x += 104_729 {
		expected, err := verify.Checksum(uint64(x))
		require.NoError(t, err)

		matches := 0
		for _, c := range verifierAlphabet {
			ok, err := verify.ValidateRUT(x, c)
			require.NoError(t, err)
			if ok {
				matches++
				assert.Equal(t, expected.String(), c)
			}
		}
		assert.Equal(t, 1, matches, "exactly one verifier must match %d", x)
	}
}

func TestValidateRUTString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		digits   string
		verifier string
		want     bool
		wantKind verify.Kind
	}{
		{"valid", "12345678", "5", true, 0},
		{"valid with leading zeros", "0011222333", "9", true, 0},
		{"invalid", "12345678", "0", false, 0},
		{"empty digits first", "", "", false, verify.KindEmptyDigits},
		{"empty verifier", "123", "", false, verify.KindEmptyVerifier},
		{"non numeric digits", "12a", "5", false, verify.KindInvalidDigits},
		{"overflowing digits", "99999999999", "5", false, verify.KindInvalidDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := verify.ValidateRUTString(tt.digits, tt.verifier)
			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, verify.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRUT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		want      verify.RUT
		wantValid bool
		wantKind  verify.Kind
	}{
		{"dotted", "12.345.678-5", verify.RUT{Correlative: 12345678, Verifier: '5'}, true, 0},
		{"dashed", "12345678-5", verify.RUT{Correlative: 12345678, Verifier: '5'}, true, 0},
		{"compact", "123456785", verify.RUT{Correlative: 12345678, Verifier: '5'}, true, 0},
		{"lower k", " 69455-k ", verify.RUT{Correlative: 69455, Verifier: 'K'}, true, 0},
		{"wrong verifier parses", "12.345.678-K", verify.RUT{Correlative: 12345678, Verifier: 'K'}, false, 0},
		{"empty", "", verify.RUT{}, false, verify.KindEmptyDigits},
		{"missing body", "-5", verify.RUT{}, false, verify.KindEmptyDigits},
		{"missing verifier", "12345678-", verify.RUT{}, false, verify.KindEmptyVerifier},
		{"bad body", "12a45-5", verify.RUT{}, false, verify.KindInvalidDigits},
		{"bad verifier", "12345678-Z", verify.RUT{}, false, verify.KindInvalidVerifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := verify.ParseRUT(tt.in)
			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, verify.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantValid, got.Valid())
		})
	}
}

func TestParseRUT_MultibyteVerifier(t *testing.T) {
	t.Parallel()

	_, err := verify.ParseRUT("1234ñ")
	require.Error(t, err)

	var verr *verify.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, verify.KindInvalidVerifier, verr.Kind)
	assert.Equal(t, "ñ", verr.Input)
	assert.True(t, utf8.ValidString(err.Error()))
}

func TestRUT(t *testing.T) {
	t.Parallel()

	r, err := verify.NewRUT(69455)
	require.NoError(t, err)
	assert.Equal(t, verify.VerifierK, r.Verifier)
	assert.Equal(t, "69455-K", r.String())
	assert.True(t, r.Valid())

	r.Verifier = '1'
	assert.False(t, r.Valid())
}
