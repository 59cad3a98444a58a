package constants

import "testing"

func TestMapExtToFormat(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".txt", TXT},
		{".TXT", TXT},
		{"pdf", PDF},
		{".docx", DOCX},
		{".exe", ""},
		{".doc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MapExtToFormat(tt.ext); got != tt.want {
			t.Errorf("MapExtToFormat(%q) = %q, want %q", tt.ext, got, tt.want)
		}
	}
}

func TestNormalizeExt(t *testing.T) {
	if got := NormalizeExt(".DocX"); got != "docx" {
		t.Errorf("NormalizeExt(.DocX) = %q", got)
	}
}
