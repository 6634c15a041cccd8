// Command ribbondemo draws a cartoon of synthetic protein chains.
//
// Each chain is given as a span list, for example
//
//	ribbondemo -chains "T3 H14 T4 E6 T2 E6 T3, T2 E5 T3 H8 T2" -output cartoon.png
//
// where H, E and T stand for helix, strand and turn residues.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/math/f64"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ribbon"
	"github.com/gogpu/ribbon/cache"
	"github.com/gogpu/ribbon/internal/style"
)

func main() {
	var (
		width     = flag.Int("width", 1024, "image width")
		height    = flag.Int("height", 768, "image height")
		output    = flag.String("output", "cartoon.png", "output file")
		chains    = flag.String("chains", "T3 H14 T4 E6 T2 E6 T3", "comma separated span lists (H helix, E strand, T turn)")
		stylePath = flag.String("style", "", "YAML style file (default: built-in)")
		yaw       = flag.Float64("yaw", 25, "view rotation about the vertical axis, degrees")
		pitch     = flag.Float64("pitch", 20, "view rotation about the horizontal axis, degrees")
		frames    = flag.Int("frames", 1, "number of turntable frames; >1 writes name_000.png, name_001.png, ...")
		verbose   = flag.Bool("v", false, "log build diagnostics")
	)
	flag.Parse()

	if *verbose {
		ribbon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *frames < 1 {
		*frames = 1
	}

	st := style.Default()
	if *stylePath != "" {
		var err error
		if st, err = style.Load(*stylePath); err != nil {
			log.Fatal(err)
		}
	}

	var input []ribbon.Chain
	for i, spec := range strings.Split(*chains, ",") {
		c, err := parseChain(string(rune('A'+i)), spec)
		if err != nil {
			log.Fatal(err)
		}
		input = append(input, c)
	}

	curveCache := cache.New()
	if err := curveCache.Prefetch(context.Background(), input); err != nil {
		log.Fatalf("Failed to build curves: %v", err)
	}

	var curves []*ribbon.Curve
	for f := range *frames {
		// Every frame after the first is served from the cache.
		curves = curves[:0]
		for _, ch := range input {
			c, err := curveCache.Get(ch)
			if errors.Is(err, ribbon.ErrInsufficientResidues) {
				continue
			}
			if err != nil {
				log.Fatalf("Failed to build chain %s: %v", ch.ID, err)
			}
			curves = append(curves, c)
		}

		path := frameName(*output, f, *frames)
		angle := *yaw + 360*float64(f)/float64(*frames)
		if err := render(path, *width, *height, curves, &st, rotation(angle, *pitch)); err != nil {
			log.Fatalf("Failed to render %s: %v", path, err)
		}
	}

	printSummary(input, curveCache, *output, *frames)
}

// frameName returns output unchanged for a single frame and inserts a frame
// number before the extension otherwise.
func frameName(output string, frame, frames int) string {
	if frames <= 1 {
		return output
	}
	ext := filepath.Ext(output)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(output, ext), frame, ext)
}

// render draws all curves into a PNG file.
func render(path string, width, height int, curves []*ribbon.Curve, st *style.Style, rot f64.Mat3) error {
	var quads []quad
	var pts []ribbon.Vec3
	for _, c := range curves {
		q, err := ribbonQuads(c, st)
		if err != nil {
			return err
		}
		quads = append(quads, q...)
		pts = append(pts, c.Points()...)
	}
	if len(quads) == 0 {
		return errors.New("no chain has enough residues to draw")
	}

	cam := fit(rot, pts, width, height, 0.06)
	sortByDepth(quads, &cam)

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	bg := st.Background
	dc.SetRGB(bg[0], bg[1], bg[2])
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return err
	}

	dc.SetLineWidth(st.Outline)
	dc.SetLineJoin(gg.LineJoinRound)
	for i := range quads {
		q := &quads[i]
		for j, p := range q.corners {
			x, y, _ := cam.project(p)
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()

		c := shade(q.color, q.normal, rot)
		dc.SetRGB(c[0], c[1], c[2])
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		if st.Outline > 0 {
			dc.SetRGB(c[0]*0.5, c[1]*0.5, c[2]*0.5)
			if err := dc.Stroke(); err != nil {
				return err
			}
		} else {
			dc.ClearPath()
		}
	}

	return dc.SavePNG(path)
}

func printSummary(chains []ribbon.Chain, curves *cache.Curves, output string, frames int) {
	p := message.NewPrinter(language.English)
	var residues, samples int
	for _, ch := range chains {
		c, err := curves.Get(ch)
		if err != nil {
			p.Printf("chain %s: skipped (%d residues)\n", ch.ID, len(ch.Residues))
			continue
		}
		residues += c.Len()
		samples += len(c.Points())
		p.Printf("chain %s: %d residues, %d segments\n", c.ChainID(), c.Len(), len(c.Segments()))
	}
	p.Printf("%d residues, %d curve samples drawn to %s (%d frames)\n", residues, samples, output, frames)
	s := curves.Stats()
	p.Printf("cache: %d builds, %d hits (%.1f%%)\n", s.Misses, s.Hits, 100*s.HitRate())
}
