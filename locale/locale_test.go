package locale

import "testing"

func TestNeedsFallbackFont(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"", false},
		{"C", false},
		{"en", false},
		{"de_DE.UTF-8", false},
		{"ru", false},
		{"el", false},
		{"ja", true},
		{"ja_JP.UTF-8", true},
		{"zh-TW", true},
		{"zh_CN", true},
		{"ko", true},
		{"ar", true},
		{"he", true},
		{"hi", true},
		{"th", true},
		{"sr-Latn", false},
		{"not a tag!", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := NeedsFallbackFont(tt.tag); got != tt.want {
				t.Errorf("NeedsFallbackFont(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestRightToLeft(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"", false},
		{"en", false},
		{"ja", false},
		{"ar", true},
		{"ar_EG.UTF-8", true},
		{"he", true},
		{"fa", true},
		{"ur", true},
		{"dv", true},
		{"az-Arab", true},
		{"az", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := RightToLeft(tt.tag); got != tt.want {
				t.Errorf("RightToLeft(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestFromEnvironment(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"empty", nil, ""},
		{"LANG only", map[string]string{"LANG": "fr_FR.UTF-8"}, "fr_FR.UTF-8"},
		{"LC_ALL wins over LANG", map[string]string{"LC_ALL": "ja_JP", "LANG": "en_US"}, "ja_JP"},
		{"LANGUAGE list", map[string]string{"LANGUAGE": "ko:en", "LANG": "en_US"}, "ko"},
		{"C locale skipped", map[string]string{"LC_ALL": "C", "LANG": "de_DE"}, "de_DE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := FromEnvironment(getenv); got != tt.want {
				t.Errorf("FromEnvironment() = %q, want %q", got, tt.want)
			}
		})
	}
}
