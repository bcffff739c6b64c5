package optree

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/optree/optree/types"
)

func FuzzParse(f *testing.F) {
	// Seed the grammar's edges
	f.Add("--file out.txt")
	f.Add("-xvf arch.tgz")
	f.Add("-- -a operand")
	f.Add("-")
	f.Add("--file=a=b")
	f.Add("--level")
	f.Add("--level=8")
	f.Add("-z")
	f.Add("-c5 -x")
	f.Add("sub -n 3")
	f.Add("--tags a,,b;c")
	f.Add("--=x")
	f.Add("日本 -f 値")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		var (
			file  string
			level int
			tags  []string
			n     int
		)
		root := Command{
			Name: "t",
			Options: []Option{
				{Short: 'x', Long: "extract"},
				{Short: 'v', Long: "verbose", Flag: &n, FlagAction: FlagIncrement},
				{Short: 'f', Long: "file", ArgName: "FILE", Kind: types.KindString, Store: &file},
				{Long: "level", ArgName: "[N]", Kind: types.KindInt, Default: "1", Store: &level},
				{Long: "tags", ArgName: "LIST", Kind: types.KindString, ListDelims: ",;", Store: &tags},
				{Short: 'c', ArgName: "[N]", Kind: types.KindInt, Store: &level},
			},
			Subcommands: []Command{
				{Name: "sub", Options: []Option{{Short: 'n', ArgName: "N", Kind: types.KindInt}}},
			},
		}
		p, err := NewParser(&root)
		if err != nil {
			t.Fatalf("declaration rejected: %v", err)
		}

		// Failures are expected for most inputs; panics are not.
		_ = p.Parse(append([]string{"t"}, strings.Fields(input)...))

		var out bytes.Buffer
		p.PrintHelp(&out, nil)
		assert.True(t, utf8.ValidString(out.String()), "help contains invalid UTF-8")
		assert.NotContains(t, out.String(), "%!", "help contains formatting errors")
	})
}

func FuzzParseString(f *testing.F) {
	f.Add(`--file "a b.txt" -x`)
	f.Add(`-- 'quoted operand'`)
	f.Add("plain words")
	f.Add(`--file "unterminated`)

	f.Fuzz(func(t *testing.T, line string) {
		root := Command{
			Name: "t",
			Options: []Option{
				{Short: 'x', Long: "extract"},
				{Short: 'f', Long: "file", ArgName: "FILE", Kind: types.KindString},
			},
		}
		p, err := NewParser(&root)
		if err != nil {
			t.Fatalf("declaration rejected: %v", err)
		}

		// Bad quoting and parse failures surface as errors, never panics.
		_ = p.ParseString(line)
	})
}

func FuzzHelp(f *testing.F) {
	f.Add("flag", "desc!@#$%^&*()")
	f.Add("漢字", "説明 text with a long tail that wraps across several lines of output")
	f.Add("a", "")

	f.Fuzz(func(t *testing.T, long, desc string) {
		if !utf8.ValidString(long) || !utf8.ValidString(desc) {
			return
		}
		root := Command{Name: "t", Options: []Option{{Long: long, Description: desc}}}
		p, err := NewParser(&root)
		if err != nil {
			return // invalid declarations are rejected up front
		}

		var out bytes.Buffer
		p.PrintHelp(&out, nil)
		help := out.String()
		assert.True(t, utf8.ValidString(help), "help contains invalid UTF-8")
		assert.False(t, strings.Contains(help, "%!"), "help contains formatting errors")
		assert.NotContains(t, help, "\x00", "help contains null bytes")
	})
}

func FuzzEnvValue(f *testing.F) {
	f.Add("plain")
	f.Add("spaces and = signs")
	f.Add("こんにちは")

	f.Fuzz(func(t *testing.T, value string) {
		if strings.ContainsRune(value, 0) {
			return // the environment cannot carry NUL
		}
		t.Setenv("FZ_TAG", value)

		var tag string
		root := Command{
			Name:    "t",
			Options: []Option{{Long: "tag", ArgName: "TAG", Kind: types.KindString, Store: &tag}},
		}
		p, err := NewParser(&root, WithEnvPrefix("FZ"))
		assert.Nil(t, err)

		assert.Nil(t, p.Parse([]string{"t"}))
		assert.Equal(t, value, tag, "environment values pass through unaltered")
	})
}
