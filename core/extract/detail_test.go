package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/kiloscrape/core"
)

func TestDetailExtract(t *testing.T) {
	doc := parse(t, `<html><head>
		<meta property="og:description" content="A 75 ohm programmable attenuator.">
		<meta property="og:image" content="https://static1.squarespace.com/static/a/hero.jpg">
	</head><body>
		<h1>VB-7400</h1>
		<ul>
			<li>Impedance: 75 ohm</li>
			<li>Attenuation Range: 0-63 dB</li>
			<li>No separator here</li>
		</ul>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Len(t, ex.Products, 1)
	p := ex.Products["VB-7400"]
	require.Equal(t, "VB-7400", p.Name)
	require.Equal(t, core.PageDetail, p.PageType)
	require.Equal(t, "https://shop.example/products", p.PageLink)
	require.NotNil(t, p.Description)
	require.Equal(t, "A 75 ohm programmable attenuator.", *p.Description)
	require.NotNil(t, p.ImageURL)
	require.Equal(t, "https://static1.squarespace.com/static/a/hero.jpg", *p.ImageURL)
	require.Equal(t, map[string]string{
		"Impedance":         "75 ohm",
		"Attenuation Range": "0-63 dB",
	}, p.Specifications)
}

func TestDetailNoTitleNoRecord(t *testing.T) {
	// Assets are still collected even when the page yields no product.
	doc := parse(t, `<html><body>
		<img src="https://static1.squarespace.com/static/a/board.jpg">
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Empty(t, ex.Products)
	require.Equal(t, []string{"https://static1.squarespace.com/static/a/board.jpg"}, ex.Images)
}

func TestDetailDescriptionFallback(t *testing.T) {
	// Without an Open-Graph description the substantial paragraphs are
	// joined; short fragments are treated as boilerplate.
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<p>Menu</p>
		<p>The VB-7400 is a rack mounted attenuator chassis.</p>
		<p>It accepts up to twelve plug-in modules.</p>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	p := ex.Products["VB-7400"]
	require.NotNil(t, p.Description)
	require.Equal(t,
		"The VB-7400 is a rack mounted attenuator chassis. It accepts up to twelve plug-in modules.",
		*p.Description)
}

func TestDetailEmptyOGDescriptionUsesFallback(t *testing.T) {
	doc := parse(t, `<html><head>
		<meta property="og:description" content="">
	</head><body>
		<h1>VB-7400</h1>
		<p>The VB-7400 is a rack mounted attenuator chassis.</p>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	p := ex.Products["VB-7400"]
	require.NotNil(t, p.Description)
	require.Equal(t, "The VB-7400 is a rack mounted attenuator chassis.", *p.Description)
}

func TestDetailNoDescriptionAtAll(t *testing.T) {
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<p>Short.</p>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Nil(t, ex.Products["VB-7400"].Description)
}

func TestDetailOGImageKeptVerbatim(t *testing.T) {
	// The Open-Graph image is never resolved against the page URL.
	doc := parse(t, `<html><head>
		<meta property="og:image" content="//images.squarespace-cdn.com/content/hero.jpg">
	</head><body>
		<h1>VB-7400</h1>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	p := ex.Products["VB-7400"]
	require.NotNil(t, p.ImageURL)
	require.Equal(t, "//images.squarespace-cdn.com/content/hero.jpg", *p.ImageURL)
}

func TestDetailSpecificationLastValueWins(t *testing.T) {
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<ul><li>Impedance: 50 ohm</li></ul>
		<ul><li>Impedance: 75 ohm</li></ul>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Equal(t, map[string]string{"Impedance": "75 ohm"}, ex.Products["VB-7400"].Specifications)
}

func TestDetailSpecificationSplitsOnFirstColon(t *testing.T) {
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<ul><li>Frequency: 5 MHz : 1 GHz</li></ul>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Equal(t, map[string]string{"Frequency": "5 MHz : 1 GHz"}, ex.Products["VB-7400"].Specifications)
}

func TestDetailNoSpecifications(t *testing.T) {
	doc := parse(t, `<html><body><h1>VB-7400</h1></body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Nil(t, ex.Products["VB-7400"].Specifications)
}

func TestDetailDiagramAnchors(t *testing.T) {
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<a href="https://static1.squarespace.com/static/a/block.png?format=original">diagram</a>
		<a href="https://static1.squarespace.com/static/a/block.png?format=original">again</a>
		<a href="https://images.squarespace-cdn.com/content/schematic.jpg">schematic</a>
		<a href="https://elsewhere.example/not-cdn.png">ignored</a>
		<a href="https://static1.squarespace.com/static/a/page.html">ignored too</a>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Equal(t, []string{
		"https://static1.squarespace.com/static/a/block.png?format=original",
		"https://images.squarespace-cdn.com/content/schematic.jpg",
	}, ex.Diagrams)
}

func TestDetailAnchorLogoStillCollected(t *testing.T) {
	// The logo filter applies to inline images, not to direct asset links.
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<a href="https://static1.squarespace.com/static/a/logo.png?format=original">logo</a>
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Len(t, ex.Diagrams, 1)
}

func TestDetailInlineImages(t *testing.T) {
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<img data-src="https://static1.squarespace.com/static/a/front.jpg">
		<img src="https://static1.squarespace.com/static/a/pinout.png">
		<img src="https://static1.squarespace.com/static/a/site-logo.jpg">
		<img src="/assets/local.jpg">
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Equal(t, []string{"https://static1.squarespace.com/static/a/front.jpg"}, ex.Images)
	require.Equal(t, []string{"https://static1.squarespace.com/static/a/pinout.png"}, ex.Diagrams)
}

func TestDetailInlineImageDedupedAgainstAnchors(t *testing.T) {
	doc := parse(t, `<html><body>
		<h1>VB-7400</h1>
		<a href="https://static1.squarespace.com/static/a/block.png">diagram</a>
		<img src="https://static1.squarespace.com/static/a/block.png">
	</body></html>`)

	ex := NewDetail().Extract(doc, baseURL(t))

	require.Equal(t, []string{"https://static1.squarespace.com/static/a/block.png"}, ex.Diagrams)
}
