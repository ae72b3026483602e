package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
)

// TestimonialCarouselID is the element the live stream patches when the
// active testimonial changes.
const TestimonialCarouselID = "testimonial-carousel"

func Testimonials(active int, live bool) g.Node {
	return Section(
		ID("testimonials"),
		Class("py-20 bg-white relative overflow-hidden"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			SectionHeading(content.RevealTestimonialsHeading, "Trusted by Healing Communities"),
			TestimonialCarousel(active, live),
		),
	)
}

// TestimonialCarousel renders the active testimonial with its controls.
// Controls are plain links so the carousel works without scripts or a live
// session. When live is set they post to the session while it is connected.
func TestimonialCarousel(active int, live bool) g.Node {
	n := len(content.Testimonials)
	if active < 0 || active >= n {
		active = 0
	}
	t := content.Testimonials[active]
	prev := (active - 1 + n) % n
	next := (active + 1) % n

	return Div(
		ID(TestimonialCarouselID),
		Class("relative max-w-4xl mx-auto"),
		g.Attr("data-active", strconv.Itoa(active)),

		Div(
			Class("bg-gradient-to-br from-green-50 to-amber-50 rounded-2xl p-8 shadow-lg relative overflow-hidden"),
			Div(Class("absolute inset-0 bg-gradient-to-r from-green-100/20 to-teal-100/20")),
			Div(
				Class("relative z-10 text-center"),
				Div(Class("flex justify-center mb-6"), g.Group(stars(t.Rating))),
				BlockQuote(
					Class("text-xl lg:text-2xl text-charcoal italic mb-8 leading-relaxed"),
					g.Text(`"`+t.Quote+`"`),
				),
				Div(
					Class("flex items-center justify-center space-x-4"),
					Img(
						Src(t.Image),
						Alt(t.Author),
						Class("w-16 h-16 rounded-full object-cover border-4 border-white shadow-lg"),
					),
					Div(
						Class("text-left"),
						H4(Class("font-semibold text-charcoal text-lg"), g.Text(t.Author)),
						P(Class("text-sage-600"), g.Text(t.Clinic)),
					),
				),
			),
		),

		carouselControl(prev, live, "/live/carousel/prev", "Previous testimonial", "lucide--chevron-left w-6 h-6", "left-4"),
		carouselControl(next, live, "/live/carousel/next", "Next testimonial", "lucide--chevron-right w-6 h-6", "right-4"),

		Div(
			Class("flex justify-center space-x-2 mt-8"),
			g.Group(dots(active, n, live)),
		),
	)
}

func stars(rating int) []g.Node {
	nodes := make([]g.Node, 0, rating)
	for i := 0; i < rating; i++ {
		nodes = append(nodes, Span(
			Class("testimonial-star"),
			Style(fmt.Sprintf("animation-delay: %dms", i*100)),
			Icon("lucide--star w-6 h-6 text-yellow-500 fill-current animate-pulse", ""),
		))
	}
	return nodes
}

func carouselControl(target int, live bool, action, label, icon, side string) g.Node {
	return A(
		Href(testimonialHref(target)),
		g.Attr("aria-label", label),
		g.If(live, liveClick(action)),
		Class("absolute "+side+" top-1/2 transform -translate-y-1/2 w-12 h-12 bg-white rounded-full shadow-lg flex items-center justify-center text-sage-600 hover:bg-green-50 hover:scale-110 transition-all duration-300"),
		Icon(icon, ""),
	)
}

func dots(active, n int, live bool) []g.Node {
	nodes := make([]g.Node, 0, n)
	for i := 0; i < n; i++ {
		class := "w-3 h-3 rounded-full transition-all duration-300 bg-green-300 hover:bg-green-400"
		if i == active {
			class = "w-3 h-3 rounded-full transition-all duration-300 bg-sage-600 scale-125 carousel-dot-active"
		}
		nodes = append(nodes, A(
			Href(testimonialHref(i)),
			g.Attr("aria-label", fmt.Sprintf("Show testimonial %d", i+1)),
			g.If(live, liveClick(fmt.Sprintf("/live/carousel/jump/%d", i))),
			Class("inline-block "+class),
		))
	}
	return nodes
}

func testimonialHref(i int) string {
	return fmt.Sprintf("/?testimonial=%d#testimonials", i)
}
