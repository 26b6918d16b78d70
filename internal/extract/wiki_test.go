package extract

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhwordvec/internal/domain"
	"zhwordvec/internal/logger"
)

const wikiDump = `<mediawiki>
  <page>
    <title>语言</title>
    <ns>0</ns>
    <revision><text>'''语言'''是[[人类|人]]交流的[[工具]]。{{Infobox|foo=bar}}</text></revision>
  </page>
  <page>
    <title>重定向页</title>
    <ns>0</ns>
    <redirect title="语言"/>
    <revision><text>#REDIRECT [[语言]]</text></revision>
  </page>
  <page>
    <title>Category:语言学</title>
    <ns>14</ns>
    <revision><text>分类页面</text></revision>
  </page>
  <page>
    <title>文字</title>
    <ns>0</ns>
    <revision><text>文字记录语言。&lt;ref&gt;某来源&lt;/ref&gt;</text></revision>
  </page>
</mediawiki>`

func TestWikiExtractorFiltersAndStrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.xml")
	require.NoError(t, os.WriteFile(path, []byte(wikiDump), 0o644))

	e := NewWiki(logger.Discard())
	src := domain.Source{Name: "zhwiki", Archive: domain.ArchiveNone, ArchivePath: path}
	it, err := e.Extract(context.Background(), src)
	require.NoError(t, err)
	defer it.Close()

	first, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "语言是人交流的工具。", first)

	second, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "文字记录语言。", second)

	_, err = it.Next()
	assert.Equal(t, io.EOF, err)
}

func TestWikiExtractorMissingArchive(t *testing.T) {
	e := NewWiki(logger.Discard())
	src := domain.Source{Archive: domain.ArchiveBz2, ArchivePath: filepath.Join(t.TempDir(), "nope.bz2")}
	_, err := e.Extract(context.Background(), src)
	var ee *domain.ExtractionError
	assert.ErrorAs(t, err, &ee)
}

func TestWikiExtractorMalformedXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.xml")
	require.NoError(t, os.WriteFile(path, []byte("<mediawiki><page><title>x</title"), 0o644))

	e := NewWiki(logger.Discard())
	it, err := e.Extract(context.Background(), domain.Source{Archive: domain.ArchiveNone, ArchivePath: path})
	require.NoError(t, err)
	defer it.Close()

	_, err = it.Next()
	var ee *domain.ExtractionError
	assert.ErrorAs(t, err, &ee)
}

func TestStripWikitext(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "自然语言处理", "自然语言处理"},
		{"link display text", "[[北京|首都]]在北方。", "首都在北方。"},
		{"bare link", "[[北京]]在北方。", "北京在北方。"},
		{"nested templates", "{{outer|{{inner}}}}正文", "正文"},
		{"table", "{| class=x\n|-\n| cell\n|}正文", "正文"},
		{"ref pair and self-closing", `甲<ref name="a">来源</ref>乙<ref name="b"/>丙`, "甲 乙 丙"},
		{"file link", "[[File:Map.png|thumb|地图]]正文", "正文"},
		{"heading", "== 历史 ==\n正文", "正文"},
		{"emphasis", "'''加粗'''和''斜体''", "加粗和斜体"},
		{"comment", "前<!-- 注释 -->后", "前 后"},
		{"whitespace collapse", "一\n\n二\t三", "一 二 三"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripWikitext(tt.in))
		})
	}
}
