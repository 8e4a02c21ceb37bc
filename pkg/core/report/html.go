package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RenderHTML converts a Markdown report body to an HTML fragment. The table
// extension stays enabled so scenario tables paste cleanly into reports.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
	)
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// WrapPage embeds a rendered report fragment in the standalone shell used
// for file exports: inline styling, a toolbar link back to the calculator,
// and a version-stamped footer.
func WrapPage(body string, generatedAt time.Time, calculatorURL string) string {
	return fmt.Sprintf(pageShell,
		Title,
		calculatorURL,
		body,
		generatedAt.Format("2006-01-02 15:04"),
		Version,
	)
}

const pageShell = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>%s</title>
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <style>
    body {
      font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
      margin: 32px; line-height: 1.5; color: #111;
    }
    h1, h2, h3 { margin-top: 1.25em; }
    code, pre { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; }
    .container { max-width: 920px; margin: 0 auto; }
    .toolbar { margin-bottom: 16px; }
    .btn { background:#111; color:#fff; padding:8px 12px; border-radius:10px; text-decoration:none; }
    .btn:hover { background:#333; }
    .footer { margin-top: 40px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 10px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="toolbar">
      <a class="btn" href="%s">Open calculator</a>
    </div>
    %s
    <div class="footer">
      Generated %s
      • Prestige Fragrance GTM v%s
    </div>
  </div>
</body>
</html>
`
