package backend

import "testing"

func TestShellQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/srv/iso", `'/srv/iso'`},
		{"", `''`},
		{"it's", `'it'\''s'`},
		{"$(rm -rf /); `id`", "'$(rm -rf /); `id`'"},
		{"a b", `'a b'`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ShellQuote(tt.in); got != tt.want {
				t.Errorf("ShellQuote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestShellUnquote(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare", in: "/media/iso", want: "/media/iso"},
		{name: "double quoted", in: `"/media/iso"`, want: "/media/iso"},
		{name: "double quoted escapes", in: `"say \"hi\" \$HOME"`, want: `say "hi" $HOME`},
		{name: "single quoted", in: `'/srv/my iso'`, want: "/srv/my iso"},
		{name: "escaped single quote", in: `'it'\''s'`, want: "it's"},
		{name: "trailing comment", in: `3 # retries`, want: "3"},
		{name: "empty", in: `""`, want: ""},
		{name: "unterminated single", in: `'abc`, wantErr: true},
		{name: "unterminated double", in: `"abc`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShellUnquote(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ShellUnquote(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ShellUnquote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShellQuote_Unquote(t *testing.T) {
	for _, v := range []string{"/srv/iso", "it's a 'test'", "", "multi\nline", `back\slash`} {
		got, err := ShellUnquote(ShellQuote(v))
		if err != nil {
			t.Fatalf("ShellUnquote(ShellQuote(%q)): %v", v, err)
		}
		if got != v {
			t.Errorf("got %q, want %q", got, v)
		}
	}
}
