package pagerhtml

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/rshade/pagenav/internal/pager"
)

// MobileBreakpoint is the CSS width below which ClassHideOnMobile hides the control.
const MobileBreakpoint = "768px"

// Stylesheet is the default CSS for the control.
const Stylesheet = `.pagination{display:flex;align-items:center;gap:.25rem;font-family:sans-serif}
.pagination__numbers{display:flex;gap:.25rem}
.pagination__button{padding:.25rem .6rem;border:1px solid #ccc;border-radius:4px;color:#333;text-decoration:none;cursor:pointer;background:#fff}
.pagination__button--highlight{background:#7D56F4;border-color:#7D56F4;color:#fff}
.pagination__button--disabled{color:#bbb;border-color:#eee;cursor:default}
.pagination__button--jump{font-style:italic}
@media (max-width: ` + MobileBreakpoint + `){.pagination--hide-on-mobile{display:none}}
`

// Page returns a minimal standalone HTML document containing the control.
func Page(title string, p *pager.Pager, opts Options) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title><style>` + Stylesheet + `</style></head><body>` +
			`<p>Page ` + strconv.Itoa(p.CurrentPage()) + ` of ` + strconv.Itoa(p.TotalPages()) + `</p>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := Pagination(p, opts).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Handler serves Page for each request. Every request gets a fresh Pager from
// newPager; a valid "page" query parameter is applied as an external override.
func Handler(title string, newPager func() *pager.Pager, opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := newPager()
		if raw := r.URL.Query().Get("page"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil {
				p.SetCurrentPage(n)
			}
		}

		zerolog.Ctx(r.Context()).Debug().
			Str("path", r.URL.Path).
			Int("page", p.CurrentPage()).
			Msg("serving pagination page")

		templ.Handler(Page(title, p, opts)).ServeHTTP(w, r)
	})
}
