package classify

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/kiloscrape/core"
)

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestDetectListingByContainer(t *testing.T) {
	doc := parse(t, `<html><body>
		<ul class="productList">
			<li class="grid-item"><a class="grid-item-link" href="/p/one"></a></li>
			<li class="grid-item"><a class="grid-item-link" href="/p/two"></a></li>
		</ul>
	</body></html>`)
	require.Equal(t, core.PageListing, Detect(doc))
}

func TestDetectListingByLinkCount(t *testing.T) {
	// No list container, but several grid links still means a listing.
	doc := parse(t, `<html><body>
		<a class="grid-item-link" href="/p/one">one</a>
		<a class="grid-item-link" href="/p/two">two</a>
	</body></html>`)
	require.Equal(t, core.PageListing, Detect(doc))
}

func TestDetectDetailSingleLink(t *testing.T) {
	// Exactly one grid link is not enough: the threshold is strictly >1.
	doc := parse(t, `<html><body>
		<a class="grid-item-link" href="/p/one">one</a>
		<h1>VB-7400</h1>
	</body></html>`)
	require.Equal(t, core.PageDetail, Detect(doc))
}

func TestDetectDetailNoSignal(t *testing.T) {
	doc := parse(t, `<html><body><p>nothing recognizable</p></body></html>`)
	require.Equal(t, core.PageDetail, Detect(doc))
}

func TestDetectContainerBeatsLinkCount(t *testing.T) {
	// The container rule fires even when the grid holds a single item.
	doc := parse(t, `<html><body>
		<div class="productList">
			<li class="grid-item"><a class="grid-item-link" href="/p/one"></a></li>
		</div>
	</body></html>`)
	require.Equal(t, core.PageListing, Detect(doc))
}
