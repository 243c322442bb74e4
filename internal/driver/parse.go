package driver

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"vhdlparser/internal/docjson"
	"vhdlparser/internal/observ"
	"vhdlparser/internal/source"
	"vhdlparser/internal/vhdl"
)

// Options configures file and directory parsing.
type Options struct {
	Parse vhdl.Options // Name and Timer are set per file
	JSON  docjson.Options

	Cache    *DiskCache // nil disables caching
	Jobs     int        // ParseDir workers; <= 0 means GOMAXPROCS
	Progress ProgressSink
	Logger   *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// FileResult is the outcome of parsing one file.
type FileResult struct {
	Path string

	// Document is nil when the result came from the cache or the file
	// could not be read.
	Document *vhdl.Document
	JSON     []byte // nil when Fatal
	Fatal    bool
	HasError bool
	Messages []string // formatted diagnostics, sorted
	Cached   bool

	Timing observ.Report
	Err    error // read or decode failure
}

// Failed reports whether the file produced no usable document.
func (r *FileResult) Failed() bool { return r.Err != nil || r.Fatal }

// ParseFile reads and parses one file. The error is only for failures
// outside the source itself (I/O, decoding, cancellation); syntax problems
// land in the result.
func ParseFile(ctx context.Context, path string, opts Options) (*FileResult, error) {
	res := parsePath(ctx, path, opts)
	if res.Err != nil {
		return nil, res.Err
	}
	return res, nil
}

func parsePath(ctx context.Context, path string, opts Options) *FileResult {
	log := opts.logger().With(zap.String("path", path))
	timer := observ.NewTimer()
	res := &FileResult{Path: path}
	defer func() { res.Timing = timer.Report() }()

	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	idx := timer.Begin("read")
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	timer.End(idx, "")
	if err != nil {
		res.Err = err
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		return res
	}

	var key Digest
	if opts.Cache != nil {
		key = cacheKey(raw, opts)
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			log.Warn("cache read failed", zap.Error(err))
		case hit:
			log.Debug("cache hit")
			res.fromPayload(&payload)
			emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusCached})
			return res
		}
	}

	start := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusWorking})
	fs := source.NewFileSet()
	id, err := fs.AddSource(path, raw, opts.Parse.Encoding, false)
	if err == nil {
		popts := opts.Parse
		popts.Name = path
		popts.Timer = timer
		res.Document, err = vhdl.ParseFile(ctx, fs, id, popts)
	}
	if err != nil {
		res.Err = err
		emit(opts.Progress, Event{File: path, Stage: StageParse, Status: StatusError, Err: err})
		return res
	}
	doc := res.Document
	_, res.Fatal = doc.Fatal()
	res.HasError = doc.HasErrors()
	res.Messages = make([]string, len(doc.Diagnostics))
	for i, d := range doc.Diagnostics {
		res.Messages[i] = doc.Format(d)
	}

	if !res.Fatal {
		emit(opts.Progress, Event{File: path, Stage: StageEncode, Status: StatusWorking})
		idx := timer.Begin("encode")
		res.JSON, err = doc.JSON(opts.JSON)
		timer.End(idx, "")
		if err != nil {
			res.Err = fmt.Errorf("%s: encode: %w", path, err)
			emit(opts.Progress, Event{File: path, Stage: StageEncode, Status: StatusError, Err: res.Err})
			return res
		}
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, res.payload()); err != nil {
			log.Warn("cache write failed", zap.Error(err))
		}
	}

	status := StatusDone
	if res.Fatal {
		status = StatusError
	}
	emit(opts.Progress, Event{File: path, Stage: StageParse, Status: status, Elapsed: time.Since(start)})
	log.Debug("parsed",
		zap.Bool("fatal", res.Fatal),
		zap.Int("diagnostics", len(res.Messages)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res
}

func (r *FileResult) payload() *DiskPayload {
	return &DiskPayload{
		Path:     r.Path,
		Fatal:    r.Fatal,
		HasError: r.HasError,
		JSON:     r.JSON,
		Messages: r.Messages,
	}
}

func (r *FileResult) fromPayload(p *DiskPayload) {
	r.Cached = true
	r.Fatal = p.Fatal
	r.HasError = p.HasError
	r.JSON = p.JSON
	r.Messages = p.Messages
	if len(r.JSON) == 0 {
		r.JSON = nil
	}
}
