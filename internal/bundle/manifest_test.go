package bundle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	sum := strings.Repeat("ab", 32)

	tests := []struct {
		name    string
		yaml    string
		want    map[string]Entry
		wantErr bool
	}{
		{
			name: "empty",
			yaml: "resources: {}\n",
			want: map[string]Entry{},
		},
		{
			name: "no resources key",
			yaml: "# nothing yet\n",
			want: map[string]Entry{},
		},
		{
			name: "checksum and signature",
			yaml: "resources:\n  linux/aapt2_64:\n    sha256: " + strings.ToUpper(sum) + "\n    signature: linux/aapt2_64.sig\n",
			want: map[string]Entry{
				"linux/aapt2_64": {SHA256: sum, Signature: "linux/aapt2_64.sig"},
			},
		},
		{
			name:    "malformed digest",
			yaml:    "resources:\n  linux/aapt:\n    sha256: xyz\n",
			wantErr: true,
		},
		{
			name:    "entry without checks",
			yaml:    "resources:\n  linux/aapt: {}\n",
			wantErr: true,
		},
		{
			name:    "path escapes bundle",
			yaml:    "resources:\n  ../aapt:\n    sha256: " + sum + "\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			yaml:    "resources: [\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseManifest([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Resources)
		})
	}
}

func TestIsHexDigest(t *testing.T) {
	assert.True(t, isHexDigest(strings.Repeat("0f", 32)))
	assert.True(t, isHexDigest(strings.Repeat("AB", 32)))
	assert.False(t, isHexDigest(strings.Repeat("0f", 31)))
	assert.False(t, isHexDigest(strings.Repeat("zz", 32)))
}
