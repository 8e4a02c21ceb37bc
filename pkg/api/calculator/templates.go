package calculator

import "embed"

// templatesFS embeds the page templates so the server binary is
// self-contained.
//
//go:embed templates/*.html
var templatesFS embed.FS
