package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/willbeason/newton-fractal/pkg/render"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 1024

	DefaultOutDir = "out"
)

type options struct {
	width, height int

	// out is the PNG to write for a single polynomial. If empty, output goes to
	// a timestamped file in outDir.
	out    string
	outDir string

	cfg render.Config
}

func mainCmd() *cobra.Command {
	opts := &options{cfg: render.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "newton [polynomial]",
		Short: "Render the Newton fractal of a polynomial to PNG",
		Long: `Render the Newton fractal of a polynomial to PNG.

With no argument, each line read from stdin is rendered in turn, and a new
line abandons the render in progress.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, opts)
		},
	}

	addFlags(cmd.Flags(), opts)

	return cmd
}

func addFlags(flags *pflag.FlagSet, opts *options) {
	flags.IntVar(&opts.width, "width", DefaultWidth, "image width in pixels")
	flags.IntVar(&opts.height, "height", DefaultHeight, "image height in pixels")
	flags.StringVarP(&opts.out, "out", "o", "", "PNG file to write for a single polynomial")
	flags.StringVar(&opts.outDir, "out-dir", DefaultOutDir, "directory for timestamped PNG files")

	flags.IntVar(&opts.cfg.MaxIterations, "max-iterations", opts.cfg.MaxIterations,
		"Newton steps per pixel before giving up")
	flags.Float64Var(&opts.cfg.Tolerance, "tolerance", opts.cfg.Tolerance,
		"step size below which a pixel has converged")
	flags.Float64Var(&opts.cfg.PlaneScale, "scale", opts.cfg.PlaneScale,
		"width of the region of the complex plane to draw")
	flags.Float64Var(&opts.cfg.Center.Re, "center-re", 0.0, "real part of the center of the image")
	flags.Float64Var(&opts.cfg.Center.Im, "center-im", 0.0, "imaginary part of the center of the image")
	flags.IntVar(&opts.cfg.Parallelism, "parallel", opts.cfg.Parallelism, "rows to render at once")
	flags.StringVar(&opts.cfg.Variable, "variable", opts.cfg.Variable, "free variable of the polynomial")
	flags.BoolVar(&opts.cfg.Strict, "strict", false, "reject polynomials containing anything but terms")
}

func runCmd(cmd *cobra.Command, args []string, opts *options) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", opts.width, opts.height)
	}
	if err := opts.cfg.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	session := render.NewSession(opts.cfg)
	p := &printer{cmd: cmd}

	if len(args) == 1 {
		out := opts.out
		if out == "" {
			out = filepath.Join(opts.outDir, timestamp()+".png")
		}

		return <-start(cmd.Context(), p, session, render.TextSource(args[0]), opts, out)
	}

	return interactive(cmd, p, session, opts)
}

// interactive renders each line of stdin, letting newer lines supersede
// renders still in progress.
func interactive(cmd *cobra.Command, p *printer, session *render.Session, opts *options) error {
	wg := sync.WaitGroup{}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for n := 0; scanner.Scan(); {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n++

		out := filepath.Join(opts.outDir, fmt.Sprintf("%s-%d.png", timestamp(), n))
		done := start(cmd.Context(), p, session, render.TextSource(line), opts, out)

		wg.Add(1)
		go func() {
			defer wg.Done()

			err := <-done
			switch {
			case errors.Is(err, render.ErrSuperseded):
				p.Printf("abandoned %q\n", line)
			case err != nil:
				p.Printf("%q: %v\n", line, err)
			}
		}()
	}

	wg.Wait()

	return scanner.Err()
}

// start prints the polynomial from src and begins rendering it to the PNG file out.
func start(ctx context.Context, p *printer, session *render.Session, src render.InputSource, opts *options, out string) <-chan error {
	result := make(chan error, 1)

	poly, err := session.Config.Parse(src.PolynomialText())
	if err != nil {
		result <- err
		return result
	}

	variable := session.Config.Variable
	p.Printf("f(%s) = %s\n", variable, poly.String(variable))
	p.Printf("f'(%s) = %s\n", variable, poly.Derivative().String(variable))

	begin := time.Now()
	canvas := render.NewImageCanvas(opts.width, opts.height)
	rendered := session.Go(ctx, src, canvas)

	go func() {
		err := <-rendered
		if err == nil {
			err = writePNG(out, canvas)
		}
		if err == nil {
			p.Printf("wrote %s in %v\n", out, time.Since(begin).Round(time.Millisecond))
		}

		result <- err
	}()

	return result
}

func writePNG(path string, canvas *render.ImageCanvas) error {
	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = canvas.WritePNG(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func timestamp() string {
	return time.Now().Format("20060102150405")
}

// printer serializes output from concurrent renders.
type printer struct {
	mu  sync.Mutex
	cmd *cobra.Command
}

func (p *printer) Printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cmd.Printf(format, args...)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
