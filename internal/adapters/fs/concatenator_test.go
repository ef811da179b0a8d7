package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hellobundle/internal/adapters/fs"
	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeFragments(t *testing.T, dir string, contents map[string]string) {
	t.Helper()
	for name, content := range contents {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.PrivateFilePerm))
	}
}

func TestConcatenator_Concatenate(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		fragments []string
		want      string
	}{
		{
			name:      "single fragment",
			fragments: []string{"a.js"},
			want:      "var a=1;",
		},
		{
			name:      "declared order without separators",
			fragments: []string{"b.js", "a.js", "c.js"},
			want:      "var b=2;\nvar a=1;function c(){}",
		},
		{
			name:      "duplicates are kept",
			fragments: []string{"a.js", "a.js"},
			want:      "var a=1;var a=1;",
		},
		{
			name:      "header first",
			header:    "/*! banner */\n",
			fragments: []string{"a.js"},
			want:      "/*! banner */\nvar a=1;",
		},
		{
			name:      "empty fragment",
			fragments: []string{"empty.js", "a.js"},
			want:      "var a=1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFragments(t, dir, map[string]string{
				"a.js":     "var a=1;",
				"b.js":     "var b=2;\n",
				"c.js":     "function c(){}",
				"empty.js": "",
			})

			paths := make([]string, len(tt.fragments))
			for i, f := range tt.fragments {
				paths[i] = filepath.Join(dir, f)
			}
			dst := filepath.Join(dir, "out.js")
			require.NoError(t, os.WriteFile(dst, []byte("previous content that is longer"), domain.PrivateFilePerm))

			c := fs.NewConcatenator(fs.NewArtifactFS())
			require.NoError(t, c.Concatenate(t.Context(), []byte(tt.header), paths, dst))

			got, err := os.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestConcatenator_MissingFragment_LeavesDestination(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{"a.js": "var a=1;"})

	dst := filepath.Join(dir, "out.js")
	require.NoError(t, os.WriteFile(dst, []byte("/*! banner */\n"), domain.PrivateFilePerm))

	missing := filepath.Join(dir, "missing.js")
	c := fs.NewConcatenator(fs.NewArtifactFS())
	err := c.Concatenate(t.Context(), nil, []string{filepath.Join(dir, "a.js"), missing}, dst)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingFragment.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, missing, zErr.Metadata()["fragment"])

	got, readErr := os.ReadFile(dst)
	require.NoError(t, readErr)
	assert.Equal(t, "/*! banner */\n", string(got))
}

func TestConcatenator_MissingFragment_NoWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockArtifactFS(ctrl)
	artifacts.EXPECT().WriteFile(gomock.Any(), gomock.Any()).Times(0)

	c := fs.NewConcatenator(artifacts)
	err := c.Concatenate(t.Context(), nil, []string{filepath.Join(t.TempDir(), "nope.js")}, "out.js")
	require.Error(t, err)
}

func TestConcatenator_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{"a.js": "var a=1;"})

	ctrl := gomock.NewController(t)
	artifacts := mocks.NewMockArtifactFS(ctrl)
	artifacts.EXPECT().
		WriteFile("out.js", []byte("var a=1;")).
		Return(errors.New("disk full"))

	c := fs.NewConcatenator(artifacts)
	err := c.Concatenate(t.Context(), nil, []string{filepath.Join(dir, "a.js")}, "out.js")
	require.EqualError(t, err, "disk full")
}

func TestConcatenator_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{"a.js": "var a=1;"})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	dst := filepath.Join(dir, "out.js")
	c := fs.NewConcatenator(fs.NewArtifactFS())
	err := c.Concatenate(ctx, nil, []string{filepath.Join(dir, "a.js")}, dst)

	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, dst)
}
