package fontengine

import (
	"errors"
	"strings"
	"testing"
)

func TestFatalErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *FatalError
		want []string
	}{
		{
			name: "outline candidates",
			err: &FatalError{
				Op: "outline", Mode: ModeMono, Size: 15, PixelSize: 20,
				Paths: []string{"a.ttf", "b.ttf"},
				Err:   ErrNoUsableFont,
			},
			want: []string{"outline: fontengine: no usable font", "mode Mono, size 15, 20px", "tried a.ttf, b.ttf"},
		},
		{
			name: "skin",
			err:  &FatalError{Op: "skin", Err: ErrNoSkinFont, Detail: "check font_path"},
			want: []string{"skin: fontengine: skin has no font", "; check font_path"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
			if !errors.Is(tt.err, tt.err.Err) {
				t.Error("errors.Is does not see the sentinel")
			}
		})
	}
	if msg := (&FatalError{Op: "skin", Err: ErrNoSkinFont}).Error(); strings.Contains(msg, "mode") {
		t.Errorf("skin error mentions a request: %q", msg)
	}
}
