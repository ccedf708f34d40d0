package version

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dyeshell/dye/pkg/errors"
)

func TestSatisfies(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	tests := []struct {
		name       string
		version    string
		constraint string
		wantErr    bool
	}{
		{"dev satisfies anything", "dev", ">= 99.0.0", false},
		{"exact match", "1.2.0", "1.2.0", false},
		{"range satisfied", "1.2.3", ">= 1.2.0", false},
		{"range not satisfied", "1.1.0", ">= 1.2.0", true},
		{"caret constraint", "1.4.0", "^1.2", false},
		{"bad constraint", "1.2.0", "not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			err := Satisfies(tt.constraint)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrVersionCheck))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
