// Package export renders a presentation as a standalone HTML artifact: a
// self-contained player with keyboard navigation, or a print-oriented
// document with one slide per page.
package export

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/slideai/slideai-server/internal/model"
)

// slideView is a slide prepared for templating: backgrounds and element
// styles are flattened to CSS up front so the templates stay declarative.
type slideView struct {
	Index      int
	Background template.CSS
	Elements   []elementView
}

type elementView struct {
	Class   string
	Style   template.CSS
	Content template.HTML
}

type documentView struct {
	Title  string
	Slides []slideView
	Total  int
}

// Player renders the presentation as a self-contained HTML player: slides
// stacked full-screen, previous/next controls, arrow-key navigation.
func Player(p *model.Presentation) ([]byte, error) {
	return render(playerTemplate, p)
}

// PrintDocument renders the presentation for printing, one slide per page.
// Browsers turn this into a PDF via their print dialog.
func PrintDocument(p *model.Presentation) ([]byte, error) {
	return render(printTemplate, p)
}

func render(tmpl *template.Template, p *model.Presentation) ([]byte, error) {
	if p == nil {
		return nil, errors.New("export: nil presentation")
	}

	view := documentView{Title: p.Title, Total: len(p.Slides)}
	for i, s := range p.Slides {
		sv := slideView{Index: i, Background: backgroundCSS(s.Background)}
		for _, el := range s.Elements {
			sv.Elements = append(sv.Elements, elementView{
				Class:   string(el.Type),
				Style:   elementCSS(el),
				Content: multiline(el.Content),
			})
		}
		view.Slides = append(view.Slides, sv)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return nil, errors.Wrap(err, "export: render")
	}
	return buf.Bytes(), nil
}

var nonSlug = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename turns a presentation title into a safe download name, replacing
// anything outside [a-z0-9] with underscores.
func Filename(title, ext string) string {
	slug := strings.ToLower(nonSlug.ReplaceAllString(title, "_"))
	if slug == "" {
		slug = "presentation"
	}
	return slug + "." + ext
}

func backgroundCSS(b model.SlideBackground) template.CSS {
	if b.Type == "gradient" && b.Gradient != nil {
		g := b.Gradient
		colors := strings.Join(g.Colors, ", ")
		if g.Type == "radial" {
			return template.CSS(fmt.Sprintf("radial-gradient(%s, %s)", g.Direction, colors))
		}
		return template.CSS(fmt.Sprintf("linear-gradient(%s, %s)", g.Direction, colors))
	}
	return template.CSS(b.Color)
}

func elementCSS(el model.TextElement) template.CSS {
	return template.CSS(fmt.Sprintf(
		"left: %.0fpx; top: %.0fpx; width: %.0fpx; height: %.0fpx; font-size: %.0fpx; color: %s; font-weight: %s; text-align: %s; font-family: %s; line-height: %.2f;",
		el.Position.X, el.Position.Y, el.Size.Width, el.Size.Height,
		el.Style.FontSize, el.Style.Color, el.Style.FontWeight,
		el.Style.TextAlign, el.Style.FontFamily, el.Style.LineHeight,
	))
}

// multiline escapes the content and preserves line breaks as <br>.
func multiline(content string) template.HTML {
	escaped := template.HTMLEscapeString(content)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

var playerTemplate = template.Must(template.New("player").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; background: #000; overflow: hidden; }
.presentation { width: 100vw; height: 100vh; position: relative; }
.slide { width: 100%; height: 100%; position: absolute; display: none; justify-content: center; align-items: center; padding: 5%; }
.slide.active { display: flex; }
.element { position: absolute; word-wrap: break-word; }
.controls { position: fixed; bottom: 20px; left: 50%; transform: translateX(-50%); z-index: 1000; display: flex; gap: 10px; }
.btn { padding: 10px 20px; background: rgba(255,255,255,0.9); border: none; border-radius: 5px; cursor: pointer; font-size: 14px; }
.btn:hover { background: rgba(255,255,255,1); }
.slide-counter { position: fixed; top: 20px; right: 20px; color: white; background: rgba(0,0,0,0.7); padding: 5px 15px; border-radius: 20px; font-size: 14px; z-index: 1000; }
</style>
</head>
<body>
<div class="presentation">
{{range .Slides}}<div class="slide{{if eq .Index 0}} active{{end}}" id="slide-{{.Index}}" style="background: {{.Background}};">
{{range .Elements}}<div class="element" style="{{.Style}}">{{.Content}}</div>
{{end}}</div>
{{end}}</div>
<div class="slide-counter"><span id="current">1</span> / <span id="total">{{.Total}}</span></div>
<div class="controls">
<button class="btn" onclick="previousSlide()">&larr; Previous</button>
<button class="btn" onclick="nextSlide()">Next &rarr;</button>
</div>
<script>
let currentSlide = 0;
const totalSlides = {{.Total}};
function showSlide(index) {
  document.querySelectorAll('.slide').forEach(slide => slide.classList.remove('active'));
  document.getElementById('slide-' + index).classList.add('active');
  document.getElementById('current').textContent = index + 1;
}
function nextSlide() {
  if (currentSlide < totalSlides - 1) { currentSlide++; showSlide(currentSlide); }
}
function previousSlide() {
  if (currentSlide > 0) { currentSlide--; showSlide(currentSlide); }
}
document.addEventListener('keydown', (e) => {
  if (e.key === 'ArrowRight' || e.key === ' ') nextSlide();
  if (e.key === 'ArrowLeft') previousSlide();
  if (e.key === 'Home') { currentSlide = 0; showSlide(currentSlide); }
  if (e.key === 'End') { currentSlide = totalSlides - 1; showSlide(currentSlide); }
});
</script>
</body>
</html>
`))

var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; }
.slide { width: 210mm; height: 148mm; page-break-after: always; display: flex; flex-direction: column; justify-content: center; align-items: center; position: relative; overflow: hidden; padding: 40px; }
.slide:last-child { page-break-after: avoid; }
.element { position: absolute; word-wrap: break-word; }
.title { font-size: 2.5rem; font-weight: bold; margin-bottom: 1rem; }
.subtitle { font-size: 1.5rem; margin-bottom: 2rem; }
.body { font-size: 1.25rem; line-height: 1.6; }
@media print {
  .slide { width: 100vw; height: 100vh; margin: 0; padding: 5%; }
}
</style>
</head>
<body>
{{range .Slides}}<div class="slide" style="background: {{.Background}};">
{{range .Elements}}<div class="element {{.Class}}" style="{{.Style}}">{{.Content}}</div>
{{end}}</div>
{{end}}</body>
</html>
`))
