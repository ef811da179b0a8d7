package minify_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hellobundle/internal/adapters/fs"
	"go.trai.ch/hellobundle/internal/adapters/minify"
	"go.trai.ch/hellobundle/internal/core/domain"
	"go.trai.ch/hellobundle/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type stubTransformer struct {
	out      []byte
	warnings []string
	err      error
	panicMsg string
	gotName  string
	gotCode  []byte
}

func (s *stubTransformer) Transform(name string, code []byte) ([]byte, []string, error) {
	s.gotName = name
	s.gotCode = code
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.out, s.warnings, s.err
}

func setupBundle(t *testing.T) (src, dst string) {
	t.Helper()
	dir := t.TempDir()
	src = filepath.Join(dir, "hello.js")
	dst = filepath.Join(dir, "hello.min.js")
	require.NoError(t, os.WriteFile(src, []byte("var a = 1;"), domain.PrivateFilePerm))
	require.NoError(t, os.WriteFile(dst, []byte("/*! banner */\n"), domain.PrivateFilePerm))
	return src, dst
}

func TestFileMinifier_Minify(t *testing.T) {
	src, dst := setupBundle(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stub := &stubTransformer{out: []byte("var a=1;\n")}
	m := minify.NewFileMinifier(stub, fs.NewArtifactFS(), mockLogger)

	require.NoError(t, m.Minify(t.Context(), src, dst))

	assert.Equal(t, src, stub.gotName)
	assert.Equal(t, "var a = 1;", string(stub.gotCode))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "var a=1;\n", string(got))
}

func TestFileMinifier_Minify_Warnings(t *testing.T) {
	src, dst := setupBundle(t)
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("duplicate key \"a\"")

	stub := &stubTransformer{out: []byte("x"), warnings: []string{"duplicate key \"a\"\n\n"}}
	m := minify.NewFileMinifier(stub, fs.NewArtifactFS(), mockLogger)

	require.NoError(t, m.Minify(t.Context(), src, dst))
}

func TestFileMinifier_Minify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		stub    *stubTransformer
		wantMsg string
	}{
		{
			name:    "transform error",
			stub:    &stubTransformer{err: errors.New("Unexpected \"=\"")},
			wantMsg: "Unexpected \"=\"",
		},
		{
			name:    "transform panic",
			stub:    &stubTransformer{panicMsg: "boom"},
			wantMsg: "transformer panicked: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, dst := setupBundle(t)
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			artifacts := mocks.NewMockArtifactFS(ctrl)
			artifacts.EXPECT().WriteFile(gomock.Any(), gomock.Any()).Times(0)

			m := minify.NewFileMinifier(tt.stub, artifacts, mockLogger)
			err := m.Minify(t.Context(), src, dst)

			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrMinificationFailed.Error())
			assert.ErrorContains(t, err, tt.wantMsg)

			got, readErr := os.ReadFile(dst)
			require.NoError(t, readErr)
			assert.Equal(t, "/*! banner */\n", string(got), "destination should keep the placeholder")
		})
	}
}

func TestFileMinifier_Minify_MissingSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := minify.NewFileMinifier(&stubTransformer{}, mocks.NewMockArtifactFS(ctrl), mocks.NewMockLogger(ctrl))

	err := m.Minify(t.Context(), filepath.Join(t.TempDir(), "missing.js"), "out.js")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMinificationFailed.Error())
}

func TestFileMinifier_WithESBuild_SyntaxError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.js")
	dst := filepath.Join(dir, "hello.min.js")
	require.NoError(t, os.WriteFile(src, []byte("function ( {"), domain.PrivateFilePerm))

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

	m := minify.NewFileMinifier(minify.NewESBuild(), fs.NewArtifactFS(), mockLogger)
	err := m.Minify(t.Context(), src, dst)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMinificationFailed.Error())
	assert.NoFileExists(t, dst)
}
