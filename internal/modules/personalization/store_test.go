package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fioriforyou.com/app/internal/shared/apperr"
)

func TestValidateText(t *testing.T) {
	tests := []struct {
		name      string
		itemgroup string
		text      string
		wantErr   bool
	}{
		{"chemises within cap", "chemises", "ABCD", false},
		{"chemises over cap", "chemises", "ABCDE", true},
		{"chemises empty", "chemises", "", false},
		{"other group long text", "costumes", "Joyeux anniversaire Papa", false},
		{"other group over 100", "costumes", string(make([]rune, 101)), true},
		{"multibyte counted as runes", "chemises", "éàçè", false},
		{"multibyte over cap", "chemises", "éàçèü", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateText(tt.itemgroup, tt.text)
			if tt.wantErr {
				require.Error(t, err)
				ae, ok := apperr.As(err)
				require.True(t, ok)
				assert.Equal(t, apperr.Invalid, ae.Kind)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
