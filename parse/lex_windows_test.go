package parse

import (
	"reflect"
	"testing"
)

func TestSplitWindows(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
		envVars map[string]string
	}{
		{
			name:  "simple command",
			input: "dir /b",
			want:  []string{"dir", "/b"},
		},
		{
			name:  "double quotes",
			input: `echo "hello world"`,
			want:  []string{"echo", "hello world"},
		},
		{
			name:  "caret escape",
			input: "echo ^| pipe",
			want:  []string{"echo", "|", "pipe"},
		},
		{
			name:  "doubled caret",
			input: "echo ^^ caret",
			want:  []string{"echo", "^", "caret"},
		},
		{
			name:  "caret at end of line",
			input: "echo ^",
			want:  []string{"echo"},
		},
		{
			name:  "backslash escapes quote",
			input: `echo "hello\"world"`,
			want:  []string{"echo", `hello"world`},
		},
		{
			name:  "backslash pair before quote",
			input: `type a\\" b"`,
			want:  []string{"type", `a\ b`},
		},
		{
			name:  "plain backslashes are literal",
			input: `dir C:\tmp\sub`,
			want:  []string{"dir", `C:\tmp\sub`},
		},
		{
			name:    "environment variable",
			input:   "echo %GREETING%",
			want:    []string{"echo", "hello"},
			envVars: map[string]string{"GREETING": "hello"},
		},
		{
			name:  "missing closing percent stays literal",
			input: "echo %GREETING",
			want:  []string{"echo", "%GREETING"},
		},
		{
			name:  "unset variable expands to nothing",
			input: "echo %OPTREE_UNSET_VAR%",
			want:  []string{"echo"},
		},
		{
			name:    "quotes suppress expansion",
			input:   `echo "%GREETING%"`,
			want:    []string{"echo", "%GREETING%"},
			envVars: map[string]string{"GREETING": "hello"},
		},
		{
			name:  "empty quotes produce an empty token",
			input: `copy "" dest`,
			want:  []string{"copy", "", "dest"},
		},
		{
			name:  "operators are plain tokens",
			input: "cmd1 && cmd2 || cmd3",
			want:  []string{"cmd1", "&&", "cmd2", "||", "cmd3"},
		},
		{
			name:  "whitespace variants",
			input: "cmd1\t  cmd2\r\ncmd3\n",
			want:  []string{"cmd1", "cmd2", "cmd3"},
		},
		{
			name:  "unterminated quote is tolerated",
			input: `echo "abc`,
			want:  []string{"echo", "abc"},
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
		{
			name:    "invalid encoding",
			input:   "dir \xff",
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}
