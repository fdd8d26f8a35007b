package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/pinyin/dictionary"
	"github.com/teatak/pinyin/render"
	"github.com/teatak/pinyin/segmenter"
)

func newTestSegmenter() *segmenter.Segmenter {
	dict, _ := dictionary.Compile([]string{
		"忘 忘 [wang4] /to forget/",
		"東西 东西 [dong1 xi1] /east and west/",
	}, nil)
	return segmenter.NewSegmenter(dict)
}

func TestConvert(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	count, err := convert(newTestSegmenter(), render.Options{}, strings.NewReader("忘东西\n\n  东西  \n"), &out, logger)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "忘东西\twàng dōngxī\n东西\tdōngxī\n", out.String())
}

func TestConvertReadError(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	boom := errors.New("disk gone")

	_, err := convert(newTestSegmenter(), render.Options{}, iotest.ErrReader(boom), &out, logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
