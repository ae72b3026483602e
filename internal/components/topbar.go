package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Href  string
	Label string
}

var sectionNav = []navItem{
	{"#features", "Features"},
	{"#how-it-works", "How It Works"},
	{"#for-doctors", "For Doctors"},
	{"#for-patients", "For Patients"},
	{"#testimonials", "Testimonials"},
}

// Topbar links to the page's own sections only.
func Topbar() g.Node {
	return Nav(
		Class("sticky top-0 z-50 bg-white/80 backdrop-blur border-b border-green-100"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex justify-between items-center h-16"),
			A(Href("#hero"), Logo()),
			Ul(
				Class("hidden lg:flex gap-6 text-sm font-medium text-gray-700"),
				g.Group(g.Map(sectionNav, func(item navItem) g.Node {
					return Li(A(Href(item.Href), Class("hover:text-sage-600 transition-colors"), g.Text(item.Label)))
				})),
			),
		),
	)
}
