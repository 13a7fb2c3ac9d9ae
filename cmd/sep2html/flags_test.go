package main

import (
	"testing"
)

// ---- TestParseFlags - Flag parsing and positional arguments ----

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     cliFlags
		wantArgs []string
		wantErr  bool
	}{
		{
			name:     "no arguments",
			args:     nil,
			want:     cliFlags{},
			wantArgs: []string{},
		},
		{
			name:     "sep numbers",
			args:     []string{"42", "9"},
			want:     cliFlags{},
			wantArgs: []string{"42", "9"},
		},
		{
			name:     "short flags",
			args:     []string{"-b", "-q", "-u", "guido", "42"},
			want:     cliFlags{browse: true, quiet: true, user: "guido"},
			wantArgs: []string{"42"},
		},
		{
			name:     "long flags",
			args:     []string{"--install", "--config", "site.yaml", "--pdf"},
			want:     cliFlags{install: true, config: "site.yaml", pdf: true},
			wantArgs: []string{},
		},
		{
			name:     "local implies install",
			args:     []string{"-l"},
			want:     cliFlags{local: true, install: true},
			wantArgs: []string{},
		},
		{
			name:    "unknown flag",
			args:    []string{"--frobnicate"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, args, err := parseFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFlags() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("parseFlags() args = %q, want %q", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("parseFlags() args[%d] = %q, want %q", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}
