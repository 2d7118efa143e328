package sshcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPosixPath(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in  string
		out string
	}{
		{`C:\keys\id_rsa`, `"/C/keys/id_rsa"`},
		{`d:\Users\me\.ssh\id_ed25519`, `"/d/Users/me/.ssh/id_ed25519"`},
		{"", `""`},
		{"/home/me/.ssh/id_rsa", `"/home/me/.ssh/id_rsa"`},
		{"/k", `"/k"`},
		{`keys\C:\x`, `"keys/C:/x"`},
	} {
		assert.Equal(t, tc.out, ToPosixPath(tc.in), tc.in)
	}
}

func TestRenderReplacesIdentityFile(t *testing.T) {
	t.Parallel()

	in := "Host *\n\tIdentityFile \"/old\"\n\tUser git\n"
	want := "Host *\n\tIdentityFile \"/new\"\n\tUser git\n"
	assert.Equal(t, want, Render(strings.Split(in, "\n"), `"/new"`))
}

func TestRenderLeavesOtherHostsAlone(t *testing.T) {
	t.Parallel()

	in := `Host github.com
	IdentityFile ~/.ssh/github
Host *
	IdentityFile ~/.ssh/old
	ServerAliveInterval 60
Host example.org
	IdentityFile ~/.ssh/example
`
	want := `Host github.com
	IdentityFile ~/.ssh/github
Host *
	IdentityFile "/k"
	ServerAliveInterval 60
Host example.org
	IdentityFile ~/.ssh/example
`
	assert.Equal(t, want, Render(strings.Split(in, "\n"), `"/k"`))
}

func TestRenderAppendsDefaultBlock(t *testing.T) {
	t.Parallel()

	in := "Host github.com\n\tUser git\n"
	want := "Host github.com\n\tUser git\n\nHost *\n\tIdentityFile \"/k\"\n"
	assert.Equal(t, want, Render(strings.Split(in, "\n"), `"/k"`))
}

func TestRenderTrailingBlankLines(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "empty file",
			in:   "",
			out:  "Host *\n\tIdentityFile \"/k\"\n",
		},
		{
			name: "only a blank line",
			in:   "\n",
			out:  "\nHost *\n\tIdentityFile \"/k\"\n",
		},
		{
			name: "ends in blank line",
			in:   "Host foo\n\tUser git\n\n",
			out:  "Host foo\n\tUser git\n\nHost *\n\tIdentityFile \"/k\"\n",
		},
		{
			name: "no trailing newline",
			in:   "Host foo\n\tUser git",
			out:  "Host foo\n\tUser git\n\nHost *\n\tIdentityFile \"/k\"\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.out, Render(strings.Split(tc.in, "\n"), `"/k"`))
		})
	}
}

func TestSetIdentityFileEmptyFile(t *testing.T) {
	t.Parallel()

	fn := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(fn, nil, 0o600))

	require.NoError(t, New(fn).SetIdentityFile("/k"))

	buf, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "Host *\n\tIdentityFile \"/k\"\n", string(buf))
}

func TestRenderAddsBlankLineAfterLastLine(t *testing.T) {
	t.Parallel()

	in := "Host *\n\tIdentityFile \"/old\""
	assert.Equal(t, "Host *\n\tIdentityFile \"/k\"\n", Render(strings.Split(in, "\n"), `"/k"`))
}

func TestRenderIdempotent(t *testing.T) {
	t.Parallel()

	in := "Host *\n\tIdentityFile \"/k\"\n"
	assert.Equal(t, in, Render(strings.Split(in, "\n"), `"/k"`))
}

func TestRenderHostPatternWithWildcard(t *testing.T) {
	t.Parallel()

	in := "Host *.corp\n\tUser me\n"
	want := "Host *.corp\n\tIdentityFile \"/k\"\n\tUser me\n"
	assert.Equal(t, want, Render(strings.Split(in, "\n"), `"/k"`))
}

func TestSetIdentityFileMissingDir(t *testing.T) {
	t.Parallel()

	fn := filepath.Join(t.TempDir(), ".ssh", "config")
	require.NoError(t, New(fn).SetIdentityFile(`C:\keys\id_rsa`))

	buf, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "Host *\n\tIdentityFile \"/C/keys/id_rsa\"\n", string(buf))
}

func TestSetIdentityFileExisting(t *testing.T) {
	t.Parallel()

	fn := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(fn, []byte("Host *\n\tIdentityFile \"/old\"\n"), 0o600))

	require.NoError(t, New(fn).SetIdentityFile("/new"))

	buf, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "Host *\n\tIdentityFile \"/new\"\n", string(buf))
}
