package render

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// locationHref matches the target of an inline "navigate on click" handler.
var locationHref = regexp.MustCompile(`location\.href\s*=\s*['"]([^'"]+)['"]`)

// rewrite prepares a subtree for conversion: root-relative anchor and image
// URLs become absolute against the page's scheme and host, and buttons that
// navigate through an onclick handler become real links so the conversion
// keeps them.
func rewrite(sel *goquery.Selection, pageURL *url.URL) {
	base := ""
	if pageURL != nil {
		base = pageURL.Scheme + "://" + pageURL.Host
	}

	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if href := a.AttrOr("href", ""); strings.HasPrefix(href, "/") {
			a.SetAttr("href", base+href)
		}
	})
	sel.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		if src := img.AttrOr("src", ""); strings.HasPrefix(src, "/") {
			img.SetAttr("src", base+src)
		}
	})

	sel.Find("button[onclick]").Each(func(_ int, btn *goquery.Selection) {
		m := locationHref.FindStringSubmatch(btn.AttrOr("onclick", ""))
		if m == nil {
			return
		}
		href := m[1]
		if strings.HasPrefix(href, "/") {
			href = base + href
		}
		text := strings.Join(strings.Fields(btn.Text()), " ")
		if text == "" {
			text = "Download"
		}
		btn.ReplaceWithHtml(fmt.Sprintf(`<a href="%s">%s</a>`,
			html.EscapeString(href), html.EscapeString(text)))
	})
}
