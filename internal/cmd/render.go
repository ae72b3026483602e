package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/components"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
)

var (
	renderOut         string
	renderTestimonial int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the landing page as static HTML",
	Long: `Render the landing page without a live session. Counters show their
final values and every scroll-reveal element is visible.`,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderTestimonial < 0 || renderTestimonial >= len(content.Testimonials) {
		return fmt.Errorf("--testimonial must be in [0, %d), got %d", len(content.Testimonials), renderTestimonial)
	}

	page := components.LandingPage(components.PageState{
		Testimonial: renderTestimonial,
		Stats:       content.StatTargets(),
		RevealAll:   true,
	})

	var w io.Writer = cmd.OutOrStdout()
	if renderOut != "" {
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write to file instead of stdout")
	renderCmd.Flags().IntVar(&renderTestimonial, "testimonial", 0, "active testimonial index")
	rootCmd.AddCommand(renderCmd)
}
