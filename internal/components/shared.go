package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/reveal"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Icon("lucide--leaf size-6 text-sage-600", ""),
		Span(
			Class("font-serif font-bold text-xl text-charcoal"),
			g.Text("AyurSutra"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. iconClass is "set--name [classes...]".
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// liveConnected is true while the live stream is open and its session is
// mounted. "live" is patched by the stream after mounting; "streaming" is
// the request indicator of the stream.
const liveConnected = "$live && $streaming"

// Revealable marks an element for scroll reveal. Crossing the visibility
// threshold sets its "revealed" signal in the browser, which applies the
// visible class; the post to the live session only records it.
func Revealable(id string) g.Node {
	return g.Group([]g.Node{
		ID(id),
		g.Attr(fmt.Sprintf("data-on-intersect__once__threshold.%d", int(reveal.Threshold*100)),
			fmt.Sprintf("$revealed.%s = true; %s && @post('/live/reveal/%s')", id, liveConnected, id)),
		g.Attr("data-class:"+reveal.VisibleClass, "$revealed."+id),
	})
}

// liveClick posts action instead of following the link, but only while the
// live session is connected. Otherwise the link's href is followed.
func liveClick(action string) g.Node {
	return g.Attr("data-on:click",
		fmt.Sprintf("%s && (evt.preventDefault(), @post('%s'))", liveConnected, action))
}

// SectionHeading is the centered title with the gradient bar under it.
func SectionHeading(revealID, title string) g.Node {
	return Div(
		Class("text-center mb-16 animate-on-scroll"),
		Revealable(revealID),
		H2(
			Class("text-3xl lg:text-4xl font-serif font-bold text-charcoal mb-4"),
			g.Text(title),
		),
		Div(Class("w-24 h-1 bg-gradient-to-r from-sage-600 to-teal-600 mx-auto rounded-full")),
	)
}

// ArrowLink is a call-to-action link with a trailing arrow.
func ArrowLink(href, class, label string) g.Node {
	return A(
		Href(href),
		Class(class),
		g.Text(label),
		Icon("lucide--arrow-right ml-2 w-4 h-4 group-hover:translate-x-1 transition-transform duration-300", ""),
	)
}

func rolePoints(points []content.RolePoint) g.Node {
	return Div(
		Class("space-y-4 mb-8"),
		g.Group(g.Map(points, func(p content.RolePoint) g.Node {
			return Div(
				Class("flex items-start space-x-3 group"),
				Div(
					Class("text-sage-600 mt-1 group-hover:scale-110 transition-transform duration-300"),
					Icon(p.Icon+" w-6 h-6", ""),
				),
				Div(
					H4(Class("font-semibold text-charcoal group-hover:text-sage-700 transition-colors duration-300"), g.Text(p.Title)),
					P(Class("text-gray-600 group-hover:text-gray-700 transition-colors duration-300"), g.Text(p.Description)),
				),
			)
		})),
	)
}
