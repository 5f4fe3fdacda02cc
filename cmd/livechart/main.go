package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/midbel/livechart"
	"github.com/midbel/livechart/anim"
	"github.com/midbel/livechart/metrics"
	"github.com/midbel/livechart/rasterdraw"
	"github.com/midbel/livechart/svgdraw"
	"github.com/midbel/slices"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type options struct {
	Config   Config
	Title    string
	File     string
	Frames   int
	Duration time.Duration
	Select   string
	XDom     string
	YDom     string
}

func main() {
	var (
		config   = flag.String("config", "", "style file")
		title    = flag.String("title", "", "chart title")
		result   = flag.String("file", "", "output file")
		stacked  = flag.Bool("stacked", false, "stack values of a column")
		fill     = flag.Float64("fill", -1, "fill ratio of columns")
		base     = flag.Float64("base", 0, "base value")
		frames   = flag.Int("frames", 0, "number of animation frames to write")
		duration = flag.Duration("duration", 0, "play animation in real time")
		selected = flag.String("select", "", "selected value (column:value)")
		xdom     = flag.String("xdom", "", "visible columns (left:right)")
		ydom     = flag.String("ydom", "", "visible values (bottom:top)")
		debug    = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()

	logger, err := getLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := LoadConfig(*config)
	if err != nil {
		logger.Error("fail loading config", zap.String("file", *config), zap.Error(err))
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "stacked":
			cfg.Stacked = *stacked
		case "fill":
			cfg.FillRatio = *fill
		case "base":
			cfg.BaseValue = *base
		}
	})
	opts := options{
		Config:   cfg,
		Title:    *title,
		File:     *result,
		Frames:   *frames,
		Duration: *duration,
		Select:   *selected,
		XDom:     *xdom,
		YDom:     *ydom,
	}
	data, err := readData(cfg, flag.Args())
	if err != nil {
		logger.Error("fail reading data", zap.Error(err))
		os.Exit(2)
	}
	logger.Debug("data loaded", zap.String("title", *title), zap.Int("columns", data.Len()))

	switch {
	case opts.Duration > 0:
		err = playFrames(logger, data, opts)
	case opts.Frames > 0:
		err = writeFrames(data, opts)
	default:
		err = writeFile(opts.File, data, opts)
	}
	if err != nil {
		logger.Error("fail rendering chart", zap.Error(err))
		os.Exit(2)
	}
	logger.Info("chart rendered", zap.String("file", opts.File), zap.Int("columns", data.Len()))
}

func getLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// readData reads CSV files where each row, header excepted, is a column. The
// first field of a row is its category and is ignored.
func readData(cfg Config, files []string) (*livechart.ColumnData, error) {
	var cs []livechart.Column
	for _, f := range files {
		list, err := readColumns(f, cfg)
		if err != nil {
			return nil, err
		}
		cs = append(cs, list...)
	}
	data := livechart.NewColumnData(cs...)
	data.Labels = cfg.LabelAttributes()
	data.SetStacked(cfg.Stacked)
	data.SetFillRatio(cfg.FillRatio)
	data.SetBaseValue(cfg.BaseValue)
	return data, nil
}

func readColumns(file string, cfg Config) ([]livechart.Column, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, errors.Wrap(err, "open data")
	}
	defer r.Close()

	var (
		rs   = csv.NewReader(r)
		list []livechart.Column
	)
	rs.FieldsPerRecord = -1
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read header %s", file)
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrapf(err, "read %s", file)
		}
		if len(row) < 2 {
			return nil, errors.Errorf("%s: row without values", file)
		}
		var values []float64
		for _, str := range row[1:] {
			f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: invalid value", file)
			}
			values = append(values, f)
		}
		col := livechart.ColumnOf(cfg.Palette, values...)
		col.HasLabels = cfg.Labels.Show
		col.HasLabelsOnlyForSelected = cfg.Labels.OnlySelected
		col.Format = cfg.LabelFormat()
		list = append(list, col)
	}
	return list, nil
}

// writeFrames writes an animation from zero to data. Frames are rendered in
// parallel, each from its own copy of the data.
func writeFrames(data *livechart.ColumnData, opts options) error {
	var (
		bounds = data.Bounds()
		start  = fromZero(data)
		steps  = anim.Steps(opts.Frames, anim.AccelerateDecelerate)
		grp    errgroup.Group
	)
	grp.SetLimit(runtime.NumCPU())
	for i, scale := range steps {
		i, scale := i, scale
		grp.Go(func() error {
			snap := start.Copy()
			if i == len(steps)-1 {
				snap.Finish()
			} else {
				snap.Update(scale)
			}
			return writeFrame(frameName(opts.File, i), snap, bounds, opts)
		})
	}
	return grp.Wait()
}

// playFrames plays the animation in real time, writing a frame on each tick.
func playFrames(logger *zap.Logger, data *livechart.ColumnData, opts options) error {
	var (
		bounds = data.Bounds()
		live   = fromZero(data)
		index  int
		player = anim.Animator{
			Duration: opts.Duration,
			Logger:   logger,
		}
	)
	return player.Run(context.Background(), live, func(_ float64) error {
		defer func() { index++ }()
		return writeFrame(frameName(opts.File, index), live, bounds, opts)
	})
}

func fromZero(data *livechart.ColumnData) *livechart.ColumnData {
	start := data.Copy()
	for i := 0; i < start.Len(); i++ {
		col := start.At(i)
		for j := 0; j < col.Len(); j++ {
			v := col.At(j)
			v.SetValue(start.BaseValue())
			v.SetTarget(data.At(i).At(j).Value())
		}
	}
	return start
}

func writeFile(file string, data *livechart.ColumnData, opts options) error {
	return writeFrame(file, data, data.Bounds(), opts)
}

func writeFrame(file string, data *livechart.ColumnData, bounds livechart.Viewport, opts options) error {
	m, err := metrics.New(opts.Config.Density, opts.Config.ScaledDensity)
	if err != nil {
		return err
	}
	ch, err := createChart(data, bounds, m, opts)
	if err != nil {
		return err
	}
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}
	if strings.EqualFold(filepath.Ext(file), ".png") {
		err = rasterdraw.RenderChart(w, ch, m)
	} else {
		err = svgdraw.RenderChart(w, ch)
	}
	if err != nil {
		return err
	}
	return errors.Wrap(m.Err(), "measure text")
}

func createChart(data *livechart.ColumnData, bounds livechart.Viewport, m livechart.Metrics, opts options) (livechart.Chart, error) {
	rdr := livechart.NewColumnRenderer(data, m)
	rdr.SetMaxViewport(&bounds)
	if opts.XDom != "" || opts.YDom != "" {
		cur, err := parseViewport(bounds, opts.XDom, opts.YDom)
		if err != nil {
			return livechart.Chart{}, err
		}
		rdr.SetViewportCalculationEnabled(false)
		rdr.SetCurrentViewport(&cur)
	} else {
		rdr.InitCurrentViewport()
	}
	if opts.Select != "" {
		c, v, err := parsePair(opts.Select)
		if err != nil {
			return livechart.Chart{}, err
		}
		rdr.SelectValue(livechart.NewSelection(int(c), int(v)))
	}
	ch := livechart.Chart{
		Title:      opts.Title,
		TitleStyle: livechart.TextStyle{
			Size:     m.SpToPx(livechart.DefaultLabelTextSize),
			Color:    opts.Config.Axis.Color,
			Typeface: livechart.DefaultTypeface,
		},
		Width:      opts.Config.Width,
		Height:     opts.Config.Height,
		Padding:    opts.Config.Padding,
		Background: opts.Config.Background,
		Renderer:   rdr,
		Axis:       opts.Config.ValueAxis(m),
	}
	return ch, nil
}

func parseViewport(bounds livechart.Viewport, xdom, ydom string) (livechart.Viewport, error) {
	cur := bounds
	if xdom != "" {
		left, right, err := parsePair(xdom)
		if err != nil {
			return cur, err
		}
		cur.Left, cur.Right = left, right
	}
	if ydom != "" {
		bottom, top, err := parsePair(ydom)
		if err != nil {
			return cur, err
		}
		cur.Bottom, cur.Top = bottom, top
	}
	return livechart.NewViewport(cur.Left, cur.Top, cur.Right, cur.Bottom), nil
}

func parsePair(str string) (float64, float64, error) {
	vs := strings.Split(str, ":")
	if len(vs) != 2 {
		return 0, 0, errors.Errorf("%s: invalid number of values given", str)
	}
	fst, err := strconv.ParseFloat(slices.Fst(vs), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s: invalid value", str)
	}
	lst, err := strconv.ParseFloat(slices.Lst(vs), 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "%s: invalid value", str)
	}
	return fst, lst, nil
}

func frameName(file string, i int) string {
	if file == "" {
		file = "frame.svg"
	}
	ext := filepath.Ext(file)
	return fmt.Sprintf("%s-%03d%s", strings.TrimSuffix(file, ext), i, ext)
}
