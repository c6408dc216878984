package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/dtnitsch/og-preview/models"
)

type htmlView struct {
	Report      *models.Report
	Banner      string
	OGRows      []TagRow
	TwitterRows []TagRow
}

var pageTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"isLinkedIn": func(p models.Platform) bool { return p == models.PlatformLinkedIn },
}).Parse(reportHTML))

// HTML writes a self-contained page with the tag inspector, validation
// report, advisory banner and the five platform mockups.
func HTML(w io.Writer, r *models.Report) error {
	snap := r.EffectiveSnapshot()
	view := htmlView{
		Report:      r,
		Banner:      Banner(r.ScriptOnlyTags),
		OGRows:      TagRows(snap.OGTags, models.CommonOGKeys, r.ScriptOnlyTags),
		TwitterRows: TagRows(snap.TwitterTags, models.CommonTwitterKeys, r.ScriptOnlyTags),
	}
	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

const reportHTML = `<!doctype html>
<html lang="en"><head>
<meta charset="utf-8">
<title>OG Preview: {{.Report.URL}}</title>
<style>
body{font-family:-apple-system,BlinkMacSystemFont,"Segoe UI",Roboto,sans-serif;margin:24px auto;max-width:760px;color:#1c1e21;background:#f5f6f7}
h1{font-size:18px;word-break:break-all}h2{font-size:15px;margin-top:28px}
.banner{background:#fff4e5;border:1px solid #f5a623;padding:10px 12px;border-radius:6px}
.meta{color:#65676b;font-size:12px}
table{border-collapse:collapse;width:100%;background:#fff;font-size:13px}
td{border-bottom:1px solid #e4e6eb;padding:4px 8px;vertical-align:top;word-break:break-all}
.key-og{color:#1877f2}.key-twitter{color:#0f1419}.missing{color:#b0b3b8;font-style:italic}.js{color:#d93025;font-size:11px}
.badge{display:inline-block;border-radius:10px;padding:1px 8px;font-size:12px;color:#fff}
.badge-error{background:#d93025}.badge-warning{background:#f5a623}.badge-pass{background:#1e8e3e}
.v-error{color:#d93025}.v-warning{color:#b06000}.v-pass{color:#1e8e3e}
.card{background:#fff;border:1px solid #dadde1;border-radius:8px;overflow:hidden;margin:10px 0}
.card img{display:block;width:100%;max-height:300px;object-fit:cover;background:#e4e6eb}
.card .body{padding:10px 12px}.site{color:#65676b;font-size:12px;text-transform:uppercase}
.title{font-weight:600;margin:2px 0}.desc{color:#65676b;font-size:13px}
.summary{display:flex}.summary img,.thumbnail img{width:120px;height:120px;flex:none}
.thumbnail{display:flex;background:#e7fce3}
.slack{border-left:4px solid #dddddd;padding-left:10px;border-radius:0;border-top:0;border-right:0;border-bottom:0}
.slack img.favicon{display:inline;width:16px;height:16px;vertical-align:middle}
.platform{font-size:12px;font-weight:600;color:#65676b;margin-top:16px}
</style>
</head><body>
<h1>{{.Report.URL}}</h1>
<div class="meta">Live DOM from {{.Report.LiveFrom}}, evaluated against the {{.Report.Effective}} HTML{{if .Report.RawError}}; raw HTML unavailable: {{.Report.RawError}}{{end}}</div>
{{if .Banner}}<p class="banner">{{.Banner}}</p>{{end}}

<h2>Open Graph tags</h2>
<table>{{range .OGRows}}<tr><td class="key-og">{{.Key}}</td><td>{{if .Set}}{{.Value}}{{else}}<span class="missing">not set</span>{{end}}{{if .ScriptOnly}} <span class="js">JS only</span>{{end}}</td></tr>{{end}}</table>

<h2>Twitter tags</h2>
<table>{{range .TwitterRows}}<tr><td class="key-twitter">{{.Key}}</td><td>{{if .Set}}{{.Value}}{{else}}<span class="missing">not set</span>{{end}}{{if .ScriptOnly}} <span class="js">JS only</span>{{end}}</td></tr>{{end}}</table>

<h2>Validation <span class="badge badge-{{.Report.Badge.Level}}">{{.Report.Badge.Text}}</span></h2>
<div>
{{range .Report.Validation.Errors}}<div class="v-error">&#x2718; {{.}}</div>{{end}}
{{range .Report.Validation.Warnings}}<div class="v-warning">&#x26A0; {{.}}</div>{{end}}
{{range .Report.Validation.Passes}}<div class="v-pass">&#x2714; {{.}}</div>{{end}}
</div>

<h2>Previews</h2>
{{range .Report.Previews}}
<div class="platform">{{.Platform}}</div>
{{if eq .Layout "summary"}}
<div class="card summary" data-platform="{{.Platform}}" data-layout="{{.Layout}}">{{if .Image}}<img src="{{.Image}}" alt="">{{end}}<div class="body"><div class="site">{{.Site}}</div><div class="title">{{.Title}}</div><div class="desc">{{.Description}}</div></div></div>
{{else if eq .Layout "thumbnail"}}
<div class="card thumbnail" data-platform="{{.Platform}}" data-layout="{{.Layout}}">{{if .Image}}<img src="{{.Image}}" alt="">{{end}}<div class="body"><div class="title">{{.Title}}</div><div class="desc">{{.Description}}</div><div class="site">{{.Site}}</div></div></div>
{{else if eq .Layout "attachment"}}
<div class="card slack" data-platform="{{.Platform}}" data-layout="{{.Layout}}"><div class="body"><div class="site">{{if .Favicon}}<img class="favicon" src="{{.Favicon}}" alt=""> {{end}}{{.Site}}</div><div class="title">{{.Title}}</div><div class="desc">{{.Description}}</div></div>{{if .Image}}<img src="{{.Image}}" alt="">{{end}}</div>
{{else}}
<div class="card" data-platform="{{.Platform}}" data-layout="{{.Layout}}">{{if .Image}}<img src="{{.Image}}" alt="">{{end}}<div class="body"><div class="site">{{.Site}}</div><div class="title">{{.Title}}</div>{{if not (isLinkedIn .Platform)}}<div class="desc">{{.Description}}</div>{{end}}</div></div>
{{end}}
{{end}}

{{if .Report.Crawlers}}
<h2>Crawler access</h2>
<table>{{range .Report.Crawlers}}<tr><td>{{.Platform}}</td><td>{{.UserAgent}}</td><td>{{if not .Checked}}unknown ({{.Reason}}){{else if .Allowed}}allowed{{else}}<span class="v-error">blocked</span>{{end}}</td></tr>{{end}}</table>
{{end}}

{{if .Report.Suggestions}}
<h2>Suggestions</h2>
<table>{{range .Report.Suggestions}}<tr><td class="key-og">{{.Key}}</td><td>{{.Value}}</td><td class="meta">{{.Source}}</td></tr>{{end}}</table>
{{end}}
</body></html>
`
