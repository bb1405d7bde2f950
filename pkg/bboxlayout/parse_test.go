package bboxlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bboxLayoutFixture = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
<title>Quarterly report</title>
<meta name="Producer" content="LibreOffice 7.3"/>
<meta name="Creator" content="Writer"/>
<meta http-equiv="Content-Type" content="text/html; charset=UTF-8"/>
</head>
<body>
<doc>
  <page width="612.000000" height="792.000000">
    <flow>
      <block xMin="72.000000" yMin="72.600000" xMax="200.000000" yMax="104.400000">
        <line xMin="72.000000" yMin="72.600000" xMax="160.000000" yMax="86.400000">
          <word xMin="72.000000" yMin="72.600000" xMax="110.000000" yMax="86.400000">Hello</word>
          <word xMin="114.000000" yMin="72.600000" xMax="160.000000" yMax="86.400000">world</word>
        </line>
        <line xMin="72.000000" yMin="90.600000" xMax="200.000000" yMax="104.400000">
          <word xMin="72.000000" yMin="90.600000" xMax="200.000000" yMax="104.400000">again</word>
        </line>
      </block>
    </flow>
    <flow>
      <block xMin="72.000000" yMin="700.000000" xMax="90.000000" yMax="710.000000">
        <line xMin="72.000000" yMin="700.000000" xMax="90.000000" yMax="710.000000">
          <word xMin="72.000000" yMin="700.000000" xMax="90.000000" yMax="710.000000">1</word>
        </line>
      </block>
    </flow>
  </page>
  <page width="612.000000" height="792.000000">
    <flow>
      <block xMin="72.000000" yMin="72.000000" xMax="120.000000" yMax="84.000000">
        <line xMin="72.000000" yMin="72.000000" xMax="120.000000" yMax="84.000000">
          <word xMin="72.000000" yMin="72.000000" xMax="120.000000" yMax="84.000000">Second</word>
        </line>
      </block>
    </flow>
  </page>
</doc>
</body>
</html>
`

const bboxFixture = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
<title></title>
<meta http-equiv="Content-Type" content="text/html; charset=UTF-8"/>
</head>
<body>
<doc>
  <page width="595.276000" height="841.890000">
    <word xMin="56.800000" yMin="57.208000" xMax="90.118000" yMax="69.208000">Plain</word>
    <word xMin="93.118000" yMin="57.208000" xMax="120.448000" yMax="69.208000">words</word>
  </page>
</doc>
</body>
</html>
`

func TestParseBBoxLayout(t *testing.T) {
	doc, err := Parse([]byte(bboxLayoutFixture))
	require.NoError(t, err)

	assert.Equal(t, "Quarterly report", doc.Title)
	assert.Equal(t, "LibreOffice 7.3", doc.Metadata["Producer"])
	assert.Equal(t, "Writer", doc.Metadata["Creator"])
	require.Len(t, doc.Pages, 2)

	first := doc.Pages[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 612.0, first.Width)
	assert.Equal(t, 792.0, first.Height)
	require.Len(t, first.Flows, 2)
	require.Len(t, first.Flows[0].Blocks, 1)

	block := first.Flows[0].Blocks[0]
	assert.Equal(t, NewBoundingBox(72, 72.6, 200, 104.4), block.BBox)
	require.Len(t, block.Lines, 2)
	require.Len(t, block.Lines[0].Words, 2)
	assert.Equal(t, "Hello", block.Lines[0].Words[0].Text)
	assert.Equal(t, NewBoundingBox(114, 72.6, 160, 86.4), block.Lines[0].Words[1].BBox)

	assert.Equal(t, 2, doc.Pages[1].Number)
}

func TestParseBBoxWordsOnPage(t *testing.T) {
	doc, err := Parse([]byte(bboxFixture))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 1)

	page := doc.Pages[0]
	assert.Empty(t, page.Flows)
	require.Len(t, page.Words, 2)
	assert.Equal(t, "Plain", page.Words[0].Text)
	assert.InDelta(t, 841.89, page.Height, 1e-9)
}

func TestParseNoPages(t *testing.T) {
	_, err := Parse([]byte(`<html><body><doc></doc></body></html>`))
	assert.Error(t, err)
}

func TestParseLatin1(t *testing.T) {
	data := []byte(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=ISO-8859-1"/></head><body><doc>` +
		`<page width="100" height="100"><word xMin="1" yMin="1" xMax="20" yMax="10">Caf` + "\xe9" + `</word></page>` +
		`</doc></body></html>`)

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Pages[0].Words, 1)
	assert.Equal(t, "Café", doc.Pages[0].Words[0].Text)
}

func TestRenumber(t *testing.T) {
	doc, err := Parse([]byte(bboxLayoutFixture))
	require.NoError(t, err)

	doc.Renumber(5)
	assert.Equal(t, 5, doc.Pages[0].Number)
	assert.Equal(t, 6, doc.Pages[1].Number)
}

func TestDeclaredCharset(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"utf8", `<meta content="text/html; charset=UTF-8"/>`, "utf-8"},
		{"latin1", `<meta charset='ISO-8859-1'>`, "iso-8859-1"},
		{"none", `<html></html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, declaredCharset([]byte(tt.in)))
		})
	}
}
