package segmenter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teatak/pinyin/config"
	"github.com/teatak/pinyin/dictionary"
	"github.com/teatak/pinyin/pinyin"
	"github.com/teatak/pinyin/render"
)

var fixture = []string{
	"忘 忘 [wang4] /to forget/",
	"拿 拿 [na2] /to hold/",
	"一些 一些 [yi1 xie1] /some/",
	"東西 东西 [dong1 xi1] /east and west/",
	"東西 东西 [dong1 xi5] /thing/",
	"了 了 [le5] /particle/",
	"了 了 [liao3] /to finish/",
	"瞭 了 [liao4] /to understand/",
	"穿 穿 [chuan1] /to wear/",
	"不 不 [bu4] /not/",
	"上 上 [shang4] /on/",
	"不夠 不够 [bu4 gou4] /not enough/",
	"亮 亮 [liang4] /bright/",
	"成熟 成熟 [cheng2 shu2] /mature/",
	"北京 北京 [Bei3 jing1] /Beijing/",
	"3D 3D [san1 D] /three-dimensional/",
	"一個 一个 [yi1 ge4] /a/",
	"一起 一起 [yi1 qi3] /together/",
	"不僅 不仅 [bu4 jin3] /not only/",
	"還 还 [hai2] /still/",
}

func newFixture(t *testing.T) (*Segmenter, *dictionary.Dictionary) {
	t.Helper()
	dict, stats := dictionary.Compile(fixture, nil)
	// "3D" has no parsable reading
	require.Equal(t, 1, stats.Failures)
	return NewSegmenter(dict), dict
}

func TestConvert(t *testing.T) {
	seg, _ := newFixture(t)

	got := seg.Convert("忘拿一些东西了", render.Options{})
	assert.Equal(t, []string{
		"wàng ná yīxiē dōngxī le",
		"wàng ná yīxiē dōngxī liǎo",
		"wàng ná yīxiē dōngxi le",
		"wàng ná yīxiē dōngxī liào",
		"wàng ná yīxiē dōngxi liǎo",
		"wàng ná yīxiē dōngxi liào",
	}, got)

	// same dictionary state, same answer
	assert.Equal(t, got, seg.Convert("忘拿一些东西了", render.Options{}))

	got = seg.Convert("忘拿一些东西了", render.Options{ToneNumbers: true, Spaces: true})
	require.NotEmpty(t, got)
	assert.Equal(t, "wang4 na2 yi1 xie1 dong1 xi1 le5", got[0])
}

func TestConvertCapped(t *testing.T) {
	seg, _ := newFixture(t)
	seg.MaxAlternatives = 2

	assert.Equal(t, []string{
		"wàng ná yīxiē dōngxī le",
		"wàng ná yīxiē dōngxī liǎo",
	}, seg.Convert("忘拿一些东西了", render.Options{}))
}

func TestConvertAfterCorrection(t *testing.T) {
	seg, dict := newFixture(t)
	require.NoError(t, dict.ApplyCorrection(dictionary.Correction{Chinese: "东西", Pinyin: "dong1xi5"}))

	assert.Equal(t, "wàng ná yīxiē dōngxi le", seg.Best("忘拿一些东西了", render.Options{}))
}

func TestConvertPassthrough(t *testing.T) {
	seg, _ := newFixture(t)

	tests := []struct {
		text string
		want string
	}{
		{"忘鬱拿", "wàng 鬱 ná"},
		{"忘25拿", "wàng 25 ná"},
		{"拿，忘！", "ná ， wàng ！"},
		{"忘 拿", "wàng   ná"},
		{"不仅。。。, 还...", "bùjǐn 。 。 。 ,   hái ..."},
		{"北京", "Běijīng"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Best(tt.text, render.Options{}))
		})
	}
}

func TestConvertEmpty(t *testing.T) {
	seg, _ := newFixture(t)
	assert.Nil(t, seg.Convert("", render.Options{}))
	// whitespace is passed through like any other literal
	assert.Equal(t, []string{"   "}, seg.Convert("   ", render.Options{}))
	assert.Equal(t, "", seg.Best("", render.Options{}))
}

func TestConvertSandhi(t *testing.T) {
	seg, dict := newFixture(t)

	tests := []struct {
		text string
		want string
	}{
		{"穿不上", "chuān bú shàng"},
		{"不够亮", "búgòu liàng"},
		{"不成熟", "bù chéngshú"},
		{"一些", "yīxiē"},
		{"一个", "yígè"},
		{"一起", "yīqǐ"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, seg.Best(tt.text, render.Options{}))
		})
	}

	// stored readings are untouched
	list, _ := dict.Character("不")
	assert.Equal(t, pinyin.Tone4, list[0].Syllables[0].Tone)

	withYi := New(dict, config.ConversionConfig{YiFalling: true})
	assert.Equal(t, "yìxiē", withYi.Best("一些", render.Options{}))
	assert.Equal(t, "yìqǐ", withYi.Best("一起", render.Options{}))
	assert.Equal(t, "yígè", withYi.Best("一个", render.Options{}))
	assert.Equal(t, DefaultMaxAlternatives, withYi.MaxAlternatives)
}

func TestSegment(t *testing.T) {
	seg, _ := newFixture(t)

	spans := seg.Segment("不够亮鬱PKU，")
	require.Len(t, spans, 5)

	kinds := make([]Kind, len(spans))
	for i, sp := range spans {
		kinds[i] = sp.Kind
	}
	assert.Equal(t, []Kind{KindWord, KindCharacter, KindUnknown, KindAlphaNum, KindPunctuation}, kinds)
	assert.Equal(t, "PKU", spans[3].Text)
	assert.True(t, spans[3].Literal())
	assert.Len(t, spans[0].Candidates, 1)

	assert.Equal(t, []string{"忘", "拿", "一些", "东西", "了"}, seg.Cut("忘拿一些东西了"))

	spans = seg.Segment("还 ... 。。")
	texts := make([]string, len(spans))
	kinds = kinds[:0]
	for i, sp := range spans {
		texts[i] = sp.Text
		kinds = append(kinds, sp.Kind)
	}
	assert.Equal(t, []string{"还", " ", "...", " ", "。", "。"}, texts)
	assert.Equal(t, []Kind{KindCharacter, KindSpace, KindPunctuation, KindSpace, KindPunctuation, KindPunctuation}, kinds)
	assert.Equal(t, []string{"还", "...", "。", "。"}, seg.Cut("还 ... 。。"))
}

func TestBestCombinations(t *testing.T) {
	assert.Equal(t, [][]int{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{0, 0, 2},
		{0, 1, 1},
		{0, 1, 2},
	}, bestCombinations([]int{1, 2, 3}, 10))

	assert.Len(t, bestCombinations([]int{5, 5, 5, 5}, 16), 16)
	assert.Nil(t, bestCombinations([]int{2, 2}, 0))
	assert.Nil(t, bestCombinations([]int{2, 0}, 4))
	assert.Equal(t, [][]int{{}}, bestCombinations(nil, 4))
}

func TestScoreSaturates(t *testing.T) {
	assert.Equal(t, uint64(6), score([]int{0, 1, 2}))
	assert.Equal(t, uint64(math.MaxUint64), score([]int{math.MaxInt32, math.MaxInt32, math.MaxInt32}))
}
