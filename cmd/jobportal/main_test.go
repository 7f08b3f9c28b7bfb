package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"serve", "migrate", "posts"})
}

func TestPostsCreateRequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"posts", "create", "--title", "Hello"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Contains(t, err.Error(), "content")
	assert.Contains(t, err.Error(), "description")
}

func TestServeFlags(t *testing.T) {
	cmd := newServeCmd()

	flag := cmd.Flags().Lookup("skip-migrations")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
