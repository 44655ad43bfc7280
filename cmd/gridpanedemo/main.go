// Command gridpanedemo renders a sample data grid with the gridpane
// engine and writes PNG frames before and after scrolling, so the
// blit-scroll behavior can be inspected visually.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gridpane"
	"github.com/gogpu/gridpane/style"
)

func main() {
	var (
		width   = flag.Int("width", 640, "surface width in pixels")
		height  = flag.Int("height", 400, "surface height in pixels")
		rows    = flag.Int("rows", 500, "model row count")
		cols    = flag.Int("cols", 12, "model column count")
		themeFn = flag.String("theme", "", "optional YAML theme file")
		output  = flag.String("output", "grid", "output file prefix")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		gridpane.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	theme := style.Default()
	if *themeFn != "" {
		var err error
		if theme, err = style.LoadFile(*themeFn); err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
	}

	pane := gridpane.New(gridpane.WithSize(*width, *height), gridpane.WithTheme(theme))
	defer func() {
		_ = pane.Close()
	}()

	pane.Registry().Register("text", &gridpane.TextRenderer{Color: theme.Text, Padding: 4})
	pane.Registry().Register("heatmap", gridpane.NewHeatmapRenderer(0, float64(*rows)))

	columnWidths := make([]int, *cols)
	for i := range columnWidths {
		columnWidths[i] = 60 + 30*(i%3)
	}
	pane.SetRowOracle(gridpane.NewUniformSections(*rows, 24))
	pane.SetColumnOracle(gridpane.NewSectionList(columnWidths...))
	pane.SetModel(&gridpane.ModelFunc{
		Rows:    *rows,
		Columns: *cols,
		Func: func(row, col int, out *gridpane.CellData) {
			switch col % 3 {
			case 0:
				out.RendererName = "text"
				out.Value = fmt.Sprintf("r%d c%d", row, col)
			case 1:
				out.RendererName = "heatmap"
				out.Value = row
			default:
				// Default solid renderer, no value: background only.
			}
		},
	})

	pane.Repaint()
	save(pane, *output+"_0.png")

	// Small delta: satisfied by a blit plus margin repaint.
	pane.ScrollBy(40, 72)
	save(pane, *output+"_1.png")

	// Large delta: exceeds the viewport, full repaint.
	pane.ScrollTo(0, float64(*rows)*24-float64(*height))
	save(pane, *output+"_2.png")

	log.Printf("Wrote %s_{0,1,2}.png (%dx%d)", *output, *width, *height)
}

func save(pane *gridpane.Pane, path string) {
	if err := pane.Surface().SavePNG(path); err != nil {
		log.Fatalf("Failed to save %s: %v", path, err)
	}
}
