package ai

import (
	"fmt"
	"strings"
)

const (
	slideSystemPrompt = "You are a professional presentation assistant. Generate clear, engaging slide content that is well-structured and appropriate for the given context. Always respond with valid JSON format."

	outlineSystemPrompt = "You are a professional presentation strategist. Create comprehensive presentation outlines that are logical, engaging, and well-structured. Always respond with valid JSON format."

	paletteSystemPrompt = "You are a professional color theory expert and brand designer. Generate harmonious color palettes that are appropriate for presentations and consider accessibility, readability, and visual appeal. Always respond with valid JSON format."

	improveSystemPrompt = "You are a professional presentation editor. Improve slide content while maintaining its core message and making it more engaging and clear."
)

func buildSlideContentPrompt(req SlideContentRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %s slide content for the topic: %q", req.SlideType, req.Topic)
	if req.Audience != "" {
		fmt.Fprintf(&b, "\nTarget audience: %s", req.Audience)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "\nTone: %s", req.Tone)
	}
	if req.Length != "" {
		fmt.Fprintf(&b, "\nLength: %s", req.Length)
	}
	if req.Context != "" {
		fmt.Fprintf(&b, "\nAdditional context: %s", req.Context)
	}

	b.WriteString(`

Please provide the response in the following JSON format:
{
  "title": "Slide title",
  "content": ["Bullet point 1", "Bullet point 2", "Bullet point 3"],
  "subtitle": "Optional subtitle",
  "notes": "Optional speaker notes"
}`)

	switch req.SlideType {
	case "title":
		b.WriteString("\n\nFor a title slide, focus on creating an engaging main title and compelling subtitle.")
	case "content":
		b.WriteString("\n\nFor a content slide, provide 3-5 clear, concise bullet points that cover the main aspects of the topic.")
	case "bullet-points":
		b.WriteString("\n\nProvide 4-6 actionable bullet points that are specific and valuable.")
	case "conclusion":
		b.WriteString("\n\nFor a conclusion slide, summarize key takeaways and provide a strong closing message.")
	case "agenda":
		b.WriteString("\n\nFor an agenda slide, break down the presentation into logical sections.")
	case "overview":
		b.WriteString("\n\nFor an overview slide, provide a high-level summary of the main topics to be covered.")
	}

	return b.String()
}

func buildOutlinePrompt(req OutlineRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a comprehensive presentation outline for the topic: %q", req.Topic)
	if req.Audience != "" {
		fmt.Fprintf(&b, "\nTarget audience: %s", req.Audience)
	}
	if req.Duration > 0 {
		fmt.Fprintf(&b, "\nPresentation duration: %d minutes", req.Duration)
	}
	if req.Tone != "" {
		fmt.Fprintf(&b, "\nTone: %s", req.Tone)
	}
	if len(req.KeyPoints) > 0 {
		fmt.Fprintf(&b, "\nKey points to cover: %s", strings.Join(req.KeyPoints, ", "))
	}

	b.WriteString(`

Please provide the response in the following JSON format:
{
  "title": "Presentation Title",
  "slides": [
    {
      "type": "title",
      "title": "Slide Title",
      "description": "Brief description of slide content"
    }
  ]
}

Create a logical flow with:
1. Title slide
2. Agenda/Overview (if appropriate)
3. Main content slides (3-7 slides depending on duration)
4. Conclusion/Next Steps
5. Thank you/Q&A slide

Each slide should have a clear purpose and contribute to the overall narrative.`)

	return b.String()
}

func buildPalettePrompt(req PaletteRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a professional color palette for a presentation about: %q", req.Topic)
	if req.Mood != "" {
		fmt.Fprintf(&b, "\nDesired mood/style: %s", req.Mood)
	}
	if req.Industry != "" {
		fmt.Fprintf(&b, "\nIndustry context: %s", req.Industry)
	}
	if req.Audience != "" {
		fmt.Fprintf(&b, "\nTarget audience: %s", req.Audience)
	}

	b.WriteString(`

Please provide the response in the following JSON format:
{
  "primary": "#hexcolor",
  "secondary": "#hexcolor",
  "accent": "#hexcolor",
  "background": "#hexcolor",
  "text": "#hexcolor",
  "name": "Palette Name",
  "description": "Brief description of the palette and why it works for this topic"
}

Requirements:
- Use hex color codes (e.g., #1a2b3c)
- Ensure high contrast between text and background colors for accessibility
- Primary color should be the main brand/theme color
- Secondary color should complement the primary
- Accent color should be used for highlights and call-to-actions
- Background should be light enough for readability
- Text color should provide excellent contrast against the background
- Colors should be appropriate for professional presentations
- Consider color psychology and how colors relate to the topic`)

	return b.String()
}

func buildImprovePrompt(current string, improvements []string) string {
	var b strings.Builder
	b.WriteString("Please improve the following slide content based on these specific requirements:\n")
	for _, imp := range improvements {
		fmt.Fprintf(&b, "- %s\n", imp)
	}
	fmt.Fprintf(&b, "\nCurrent content:\n%q\n", current)
	b.WriteString("\nPlease provide improved content that addresses the requirements while maintaining clarity and engagement.")
	return b.String()
}
