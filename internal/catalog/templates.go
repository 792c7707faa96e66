package catalog

import "github.com/slideai/slideai-server/internal/model"

// Shared text styles for the built-in templates. Colors come from the
// Professional Blue theme; palette application recolors instantiated slides.
var (
	titleStyle = model.TextStyle{
		FontSize: 44, Color: "#1e293b", FontWeight: "bold",
		TextAlign: "center", FontFamily: "Inter", LineHeight: 1.2,
	}
	headingStyle = model.TextStyle{
		FontSize: 32, Color: "#1e293b", FontWeight: "bold",
		TextAlign: "left", FontFamily: "Inter", LineHeight: 1.2,
	}
	subtitleStyle = model.TextStyle{
		FontSize: 24, Color: "#64748b", FontWeight: "normal",
		TextAlign: "center", FontFamily: "Inter", LineHeight: 1.3,
	}
	bodyStyle = model.TextStyle{
		FontSize: 18, Color: "#334155", FontWeight: "normal",
		TextAlign: "left", FontFamily: "Inter", LineHeight: 1.5,
	}
	bulletStyle = model.TextStyle{
		FontSize: 20, Color: "#334155", FontWeight: "normal",
		TextAlign: "left", FontFamily: "Inter", LineHeight: 1.6,
	}
)

var whiteBackground = model.SlideBackground{Type: "solid", Color: "#ffffff"}

func builtinTemplates() []model.Template {
	return []model.Template{
		{
			ID: "title-slide", Name: "Title Slide", Type: model.SlideTitle,
			Description: "Opening slide with a large title and subtitle",
			Category:    "basic", Tags: []string{"title", "opening"},
			Background: whiteBackground, Layout: "centered",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Presentation Title",
					Position: model.Position{X: 100, Y: 200}, Size: model.Size{Width: 800, Height: 120}, Style: titleStyle},
				{Type: model.ElementSubtitle, Content: "Subtitle or author",
					Position: model.Position{X: 150, Y: 340}, Size: model.Size{Width: 700, Height: 60}, Style: subtitleStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: true, MaxLines: 2, AutoResize: true},
				{ID: "subtitle", Type: model.ElementSubtitle, Flexible: true, MaxLines: 2, AutoResize: true},
			},
		},
		{
			ID: "content-slide", Name: "Content Slide", Type: model.SlideContent,
			Description: "Standard slide with a heading and bulleted content",
			Category:    "basic", Tags: []string{"content", "bullets"},
			Background: whiteBackground, Layout: "heading-body",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Slide Title",
					Position: model.Position{X: 60, Y: 50}, Size: model.Size{Width: 880, Height: 70}, Style: headingStyle},
				{Type: model.ElementBullet, Content: "• First point\n• Second point\n• Third point",
					Position: model.Position{X: 80, Y: 160}, Size: model.Size{Width: 840, Height: 380}, Style: bulletStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: true, MaxLines: 2, AutoResize: true},
				{ID: "body", Type: model.ElementBody, Flexible: true, MaxLines: 8, AutoResize: true},
			},
		},
		{
			ID: "section-header", Name: "Section Header", Type: model.SlideSection,
			Description: "Divider slide introducing a new section",
			Category:    "basic", Tags: []string{"section", "divider"},
			Background: whiteBackground, Layout: "centered",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Section Title",
					Position: model.Position{X: 100, Y: 240}, Size: model.Size{Width: 800, Height: 100}, Style: titleStyle},
				{Type: model.ElementSubtitle, Content: "A short lead-in",
					Position: model.Position{X: 200, Y: 360}, Size: model.Size{Width: 600, Height: 50}, Style: subtitleStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: true, MaxLines: 2, AutoResize: true},
				{ID: "subtitle", Type: model.ElementSubtitle, Flexible: true, MaxLines: 1, AutoResize: true},
			},
		},
		{
			ID: "quote-slide", Name: "Quote", Type: model.SlideQuote,
			Description: "A single standout quotation with attribution",
			Category:    "emphasis", Tags: []string{"quote"},
			Background: whiteBackground, Layout: "centered",
			Elements: []model.TemplateElement{
				{Type: model.ElementBody, Content: "\"An inspiring quotation\"",
					Position: model.Position{X: 120, Y: 200}, Size: model.Size{Width: 760, Height: 160},
					Style: model.TextStyle{FontSize: 30, Color: "#1e293b", FontWeight: "normal",
						TextAlign: "center", FontFamily: "Georgia", LineHeight: 1.4}},
				{Type: model.ElementSubtitle, Content: "— Attribution",
					Position: model.Position{X: 300, Y: 390}, Size: model.Size{Width: 400, Height: 50}, Style: subtitleStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "quote", Type: model.ElementBody, Flexible: true, MaxLines: 4, AutoResize: true},
				{ID: "attribution", Type: model.ElementSubtitle, Flexible: true, MaxLines: 1, AutoResize: false},
			},
		},
		{
			ID: "two-column", Name: "Two Column", Type: model.SlideTwoColumn,
			Description: "Heading with two side-by-side content columns",
			Category:    "layout", Tags: []string{"columns", "comparison"},
			Background: whiteBackground, Layout: "two-column",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Slide Title",
					Position: model.Position{X: 60, Y: 50}, Size: model.Size{Width: 880, Height: 70}, Style: headingStyle},
				{Type: model.ElementBody, Content: "Left column",
					Position: model.Position{X: 60, Y: 160}, Size: model.Size{Width: 420, Height: 380}, Style: bodyStyle},
				{Type: model.ElementBody, Content: "Right column",
					Position: model.Position{X: 520, Y: 160}, Size: model.Size{Width: 420, Height: 380}, Style: bodyStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: true, MaxLines: 2, AutoResize: true},
				{ID: "left", Type: model.ElementBody, Flexible: true, MaxLines: 10, AutoResize: true},
				{ID: "right", Type: model.ElementBody, Flexible: true, MaxLines: 10, AutoResize: true},
			},
		},
		{
			ID: "agenda-slide", Name: "Agenda", Type: model.SlideContent,
			Description: "Numbered agenda for the session",
			Category:    "structure", Tags: []string{"agenda", "overview"},
			Background: whiteBackground, Layout: "heading-body",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Agenda",
					Position: model.Position{X: 60, Y: 50}, Size: model.Size{Width: 880, Height: 70}, Style: headingStyle},
				{Type: model.ElementBullet, Content: "• Topic one\n• Topic two\n• Topic three",
					Position: model.Position{X: 100, Y: 170}, Size: model.Size{Width: 800, Height: 360}, Style: bulletStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: false},
				{ID: "items", Type: model.ElementBody, Flexible: true, MaxLines: 8, AutoResize: true},
			},
		},
		{
			ID: "learning-objectives", Name: "Learning Objectives", Type: model.SlideContent,
			Description: "What the audience will take away",
			Category:    "structure", Tags: []string{"education", "objectives"},
			Background: whiteBackground, Layout: "heading-body",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Learning Objectives",
					Position: model.Position{X: 60, Y: 50}, Size: model.Size{Width: 880, Height: 70}, Style: headingStyle},
				{Type: model.ElementBullet, Content: "• Understand...\n• Be able to...\n• Apply...",
					Position: model.Position{X: 100, Y: 170}, Size: model.Size{Width: 800, Height: 360}, Style: bulletStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: false},
				{ID: "objectives", Type: model.ElementBody, Flexible: true, MaxLines: 6, AutoResize: true},
			},
		},
		{
			ID: "swot-analysis", Name: "SWOT Analysis", Type: model.SlideTwoColumn,
			Description: "Strengths, weaknesses, opportunities and threats grid",
			Category:    "business", Tags: []string{"swot", "analysis"},
			Background: whiteBackground, Layout: "grid",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "SWOT Analysis",
					Position: model.Position{X: 60, Y: 40}, Size: model.Size{Width: 880, Height: 60}, Style: headingStyle},
				{Type: model.ElementBody, Content: "Strengths",
					Position: model.Position{X: 60, Y: 130}, Size: model.Size{Width: 420, Height: 200}, Style: bodyStyle},
				{Type: model.ElementBody, Content: "Weaknesses",
					Position: model.Position{X: 520, Y: 130}, Size: model.Size{Width: 420, Height: 200}, Style: bodyStyle},
				{Type: model.ElementBody, Content: "Opportunities",
					Position: model.Position{X: 60, Y: 360}, Size: model.Size{Width: 420, Height: 200}, Style: bodyStyle},
				{Type: model.ElementBody, Content: "Threats",
					Position: model.Position{X: 520, Y: 360}, Size: model.Size{Width: 420, Height: 200}, Style: bodyStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: false},
				{ID: "strengths", Type: model.ElementBody, Flexible: true, MaxLines: 5, AutoResize: true},
				{ID: "weaknesses", Type: model.ElementBody, Flexible: true, MaxLines: 5, AutoResize: true},
				{ID: "opportunities", Type: model.ElementBody, Flexible: true, MaxLines: 5, AutoResize: true},
				{ID: "threats", Type: model.ElementBody, Flexible: true, MaxLines: 5, AutoResize: true},
			},
		},
		{
			ID: "feature-comparison", Name: "Feature Comparison", Type: model.SlideTwoColumn,
			Description: "Compare two options feature by feature",
			Category:    "business", Tags: []string{"comparison", "features"},
			Background: whiteBackground, Layout: "two-column",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Comparison",
					Position: model.Position{X: 60, Y: 50}, Size: model.Size{Width: 880, Height: 70}, Style: headingStyle},
				{Type: model.ElementBody, Content: "Option A",
					Position: model.Position{X: 60, Y: 160}, Size: model.Size{Width: 420, Height: 380}, Style: bodyStyle},
				{Type: model.ElementBody, Content: "Option B",
					Position: model.Position{X: 520, Y: 160}, Size: model.Size{Width: 420, Height: 380}, Style: bodyStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: true, MaxLines: 1, AutoResize: true},
				{ID: "option-a", Type: model.ElementBody, Flexible: true, MaxLines: 8, AutoResize: true},
				{ID: "option-b", Type: model.ElementBody, Flexible: true, MaxLines: 8, AutoResize: true},
			},
		},
		{
			ID: "business-metrics", Name: "Business Metrics", Type: model.SlideContent,
			Description: "Key figures with a short narrative",
			Category:    "business", Tags: []string{"metrics", "kpi"},
			Background: whiteBackground, Layout: "heading-body",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Key Metrics",
					Position: model.Position{X: 60, Y: 50}, Size: model.Size{Width: 880, Height: 70}, Style: headingStyle},
				{Type: model.ElementBody, Content: "Revenue, growth, retention",
					Position: model.Position{X: 80, Y: 170}, Size: model.Size{Width: 840, Height: 360}, Style: bodyStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: false},
				{ID: "metrics", Type: model.ElementBody, Flexible: true, MaxLines: 8, AutoResize: true},
			},
		},
		{
			ID: "problem-solution", Name: "Problem / Solution", Type: model.SlideTwoColumn,
			Description: "State the problem and present the solution",
			Category:    "business", Tags: []string{"problem", "solution"},
			Background: whiteBackground, Layout: "two-column",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Problem & Solution",
					Position: model.Position{X: 60, Y: 50}, Size: model.Size{Width: 880, Height: 70}, Style: headingStyle},
				{Type: model.ElementBody, Content: "The problem",
					Position: model.Position{X: 60, Y: 160}, Size: model.Size{Width: 420, Height: 380}, Style: bodyStyle},
				{Type: model.ElementBody, Content: "The solution",
					Position: model.Position{X: 520, Y: 160}, Size: model.Size{Width: 420, Height: 380}, Style: bodyStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: true, MaxLines: 1, AutoResize: true},
				{ID: "problem", Type: model.ElementBody, Flexible: true, MaxLines: 8, AutoResize: true},
				{ID: "solution", Type: model.ElementBody, Flexible: true, MaxLines: 8, AutoResize: true},
			},
		},
		{
			ID: "thank-you", Name: "Thank You", Type: model.SlideThankYou,
			Description: "Closing slide with contact details",
			Category:    "basic", Tags: []string{"closing"},
			Background: whiteBackground, Layout: "centered",
			Elements: []model.TemplateElement{
				{Type: model.ElementTitle, Content: "Thank You",
					Position: model.Position{X: 100, Y: 220}, Size: model.Size{Width: 800, Height: 110}, Style: titleStyle},
				{Type: model.ElementSubtitle, Content: "Questions?",
					Position: model.Position{X: 250, Y: 350}, Size: model.Size{Width: 500, Height: 50}, Style: subtitleStyle},
			},
			ContentAreas: []model.ContentArea{
				{ID: "title", Type: model.ElementTitle, Flexible: true, MaxLines: 1, AutoResize: true},
				{ID: "subtitle", Type: model.ElementSubtitle, Flexible: true, MaxLines: 2, AutoResize: true},
			},
		},
	}
}
