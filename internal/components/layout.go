package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/assets"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type PageConfig struct {
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "AyurSutra - Intelligent Panchakarma, Simplified"
	}

	if config.Description == "" {
		config.Description = "AI-powered Panchakarma management: digitized prescriptions, smart therapy scheduling and progress tracking for doctors, therapists and patients."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("icon"), Href(assets.Path("images/favicon.svg")), Type("image/svg+xml")),

				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href(assets.Path("styles.css"))),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Script(Type("module"), Src(datastarScript)),
			),
			Body(
				Class("bg-mint-50 text-charcoal"),
				g.Group(content),
			),
		),
	})
}
