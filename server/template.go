package server

import (
	"embed"
	"html/template"
	"io"

	"github.com/abiosoft/mold"
	"github.com/russross/blackfriday/v2"
)

var (
	//go:embed templates
	templateFS embed.FS

	// pageLayout renders pages through the shared layout template.
	pageLayout mold.Engine

	templateFuncMap = template.FuncMap{
		"markdown": func(text string) template.HTML {
			return template.HTML(blackfriday.Run([]byte(text)))
		},
	}
)

func init() {
	var err error
	pageLayout, err = mold.New(templateFS,
		mold.WithRoot("templates"),
		mold.WithLayout("layout.html"),
		mold.WithFuncMap(templateFuncMap),
	)
	if err != nil {
		panic(err)
	}
}

// PageContent is the data handed to page templates. Content is markdown;
// the template renders it to HTML.
type PageContent struct {
	Title   string
	Content string
}

// ExecTemplate renders a markdown page through the shared layout.
func ExecTemplate(w io.Writer, content PageContent) error {
	return pageLayout.Render(w, "help.html", content)
}
