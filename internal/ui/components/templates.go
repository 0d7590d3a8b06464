// Copyright (c) 2025 chatai contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

// Template is a starter prompt shown on the welcome screen.
type Template struct {
	Icon   string
	Title  string
	Prompt string
}

// templatesByCategory holds the starter prompts per category.
var templatesByCategory = map[string][]Template{
	"All": {
		{Icon: "📝", Title: "Content Creation", Prompt: "Write a blog post about the future of AI in 2025."},
		{Icon: "🖼️", Title: "Image Generation", Prompt: "Generate a futuristic city with flying cars in cyberpunk style."},
		{Icon: "📊", Title: "Data Analysis", Prompt: "Analyze this sample data: [10, 20, 30, 40] and give me the trend."},
	},
	"Text": {
		{Icon: "✍️", Title: "Creative Writing", Prompt: "Write a short sci-fi story about a robot discovering feelings."},
		{Icon: "📧", Title: "Email Templates", Prompt: "Draft a professional follow-up email after a job interview."},
		{Icon: "📚", Title: "Summarization", Prompt: "Summarize the concept of quantum entanglement for a 5-year-old."},
	},
	"Image": {
		{Icon: "🎨", Title: "Artistic Styles", Prompt: "Describe a landscape in the style of Van Gogh."},
		{Icon: "📸", Title: "Product Photography", Prompt: "Generate a high-end watch on a marble surface with soft lighting."},
		{Icon: "🎭", Title: "Character Design", Prompt: "Design a fantasy warrior with dragon-scaled armor."},
	},
	"Video": {
		{Icon: "🎬", Title: "Video Scripts", Prompt: "Write a 60-second script for a viral tech review video."},
		{Icon: "🎞️", Title: "Animation Ideas", Prompt: "Describe a 3D animation sequence for a magical forest transition."},
		{Icon: "📽️", Title: "Cinematic Prompts", Prompt: "Provide camera angles and lighting setups for a noir detective scene."},
	},
	"Music": {
		{Icon: "🎵", Title: "Lyric Writing", Prompt: "Write catch lyrics for a synth-wave song about nostalgia."},
		{Icon: "🎹", Title: "Melody Ideas", Prompt: "Describe a melancholic piano progression in C minor."},
		{Icon: "🎧", Title: "Production Advice", Prompt: "How do I achieve a \"lo-fi\" aesthetic in my music production?"},
	},
	"Analytics": {
		{Icon: "📈", Title: "Market Trends", Prompt: "What are the current tech market trends for Q1 2026?"},
		{Icon: "🔍", Title: "SEO Optimization", Prompt: "Give me 5 SEO keywords for a vegan recipe blog."},
		{Icon: "📐", Title: "Math Problem Solving", Prompt: "Explain and solve the Pythagorean theorem with examples."},
	},
}

// TemplatesFor returns the starter prompts for a category.
// Unknown categories fall back to "All".
func TemplatesFor(category string) []Template {
	if templates, ok := templatesByCategory[category]; ok {
		return templates
	}
	return templatesByCategory["All"]
}
