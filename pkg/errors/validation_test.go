package errors

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://example.com/path", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
		{"relative", "/deals", true},
		{"no host", "https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "products", false},
		{"with separators", "section:deals/1", false},
		{"unicode", "produits-été", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 257), true},
		{"newline", "a\nb", true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSnapshot) {
				t.Errorf("ValidateIdentifier(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidSnapshot)
			}
		})
	}
}

func TestValidateTile(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		columns       int
		wantErr       bool
	}{
		{"full width", 12, 5, 12, false},
		{"half", 6, 6, 12, false},
		{"single cell", 1, 1, 1, false},

		{"zero width", 0, 1, 12, true},
		{"negative height", 3, -1, 12, true},
		{"too wide", 13, 1, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTile(tt.width, tt.height, tt.columns)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTile(%d, %d, %d) error = %v, wantErr %v", tt.width, tt.height, tt.columns, err, tt.wantErr)
			}
		})
	}
}

func TestValidateColumns(t *testing.T) {
	if err := ValidateColumns(12); err != nil {
		t.Errorf("ValidateColumns(12) error = %v", err)
	}
	if err := ValidateColumns(0); !Is(err, ErrCodeInvalidGrid) {
		t.Errorf("ValidateColumns(0) error = %v, want %v", err, ErrCodeInvalidGrid)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidTile,
		ErrCodeInvalidGrid,
		ErrCodeInvalidSnapshot,
		ErrCodeInvalidConfig,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeMissingComponent,
		ErrCodeMissingHeader,
		ErrCodeMissingItem,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeRateLimited,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
