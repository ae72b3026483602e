package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Div(
		Class("bg-white border-t border-green-100"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-8 flex flex-wrap justify-between items-center gap-3"),
			Logo(),
			P(
				Class("text-sm text-gray-600"),
				g.Text(fmt.Sprintf("© %d AyurSutra. All rights reserved.", time.Now().Year())),
			),
		),
	)
}
