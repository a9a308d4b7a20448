package export

import (
	"context"
	"os/exec"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// A4 paper in inches.
const (
	PaperWidth  = 8.27
	PaperHeight = 11.69
)

// DeviceScaleFactor is the rasterization density used for the print target.
const DeviceScaleFactor = 2

// DefaultTimeout bounds a single export including browser start-up.
const DefaultTimeout = 60 * time.Second

// A4 at 96 CSS pixels per inch.
const (
	viewportWidth  = 794
	viewportHeight = 1123
)

// Options configures a PDFExporter.
type Options struct {
	ChromePath string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// PDFExporter renders the print tree and prints it with headless Chrome.
type PDFExporter struct {
	execPath string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewPDFExporter locates Chrome and returns an exporter. The exporter is
// returned even when Chrome is missing; Available reports whether it can run.
func NewPDFExporter(opts Options) *PDFExporter {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &PDFExporter{
		execPath: FindChrome(opts.ChromePath),
		timeout:  opts.Timeout,
		logger:   opts.Logger,
	}
}

// Available reports whether a Chrome executable was found.
func (e *PDFExporter) Available() bool {
	return e.execPath != ""
}

// Export renders doc for print and returns the download filename and PDF bytes.
func (e *PDFExporter) Export(ctx context.Context, doc types.Document) (string, []byte, error) {
	name := rendering.ExportFilename(doc.PersonalInfo.FullName)

	html, err := rendering.HTML(doc, rendering.Options{ForPrint: true})
	if err != nil {
		return name, nil, &ExportError{Message: "failed to render print view", Cause: err}
	}

	pdf, err := e.PrintHTML(ctx, html)
	if err != nil {
		return name, nil, err
	}
	return name, pdf, nil
}

// PrintHTML loads html into a blank page and prints it to an A4 PDF.
func (e *PDFExporter) PrintHTML(ctx context.Context, html string) ([]byte, error) {
	if !e.Available() {
		return nil, &ExportError{Message: "chrome is not installed", Cause: exec.ErrNotFound}
	}

	start := time.Now()
	e.logger.Debug("starting headless browser", zap.String("chrome", e.execPath))

	browserCtx, cancel := newBrowser(ctx, e.execPath)
	defer cancel()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, e.timeout)
	defer cancelTimeout()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(viewportWidth, viewportHeight, DeviceScaleFactor, false),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("#resume-pdf-target", chromedp.ByID),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPaperWidth(PaperWidth).
				WithPaperHeight(PaperHeight).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPrintBackground(true).
				WithScale(1).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, &ExportError{Message: "browser printing failed", Cause: err}
	}

	e.logger.Debug("rendered pdf",
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)),
	)
	return pdf, nil
}
