package main

import (
	"bytes"
	"testing"


	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Subset(t, names, []string{"migrate", "seed", "import", "stats"})
}

func TestRootCmd_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "stats without user", args: []string{"stats"}, contains: "accepts 1 arg"},
		{name: "stats with bad user", args: []string{"stats", "abc"}, contains: `invalid user id "abc"`},
		{name: "import without file", args: []string{"import"}, contains: "accepts 1 arg"},
		{name: "import unknown format", args: []string{"import", "words.txt"}, contains: "unsupported file format"},
		{name: "seed with extra args", args: []string{"seed", "now"}, contains: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(&out)
			root.SetArgs(tt.args)

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestImportCmd_Flags(t *testing.T) {
	cmd := newImportCmd(&app{})

	require.NoError(t, cmd.ParseFlags([]string{"--sheet", "Colors", "--skip-header"}))

	sheet, err := cmd.Flags().GetString("sheet")
	require.NoError(t, err)
	assert.Equal(t, "Colors", sheet)

	skip, err := cmd.Flags().GetBool("skip-header")
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestParseUserID(t *testing.T) {
	id, err := parseUserID("123456789")
	require.NoError(t, err)
	assert.Equal(t, int64(123456789), id)

	_, err = parseUserID("12a")
	assert.Error(t, err)
}
