// Package processor runs batch conversions of shape documents.
package processor

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/woozymasta/geodoc/internal/config"
	"github.com/woozymasta/geodoc/internal/convert"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Result reports the outcome of one job.
type Result struct {
	Err       error
	Job       string
	Output    string
	Documents int
	Skipped   bool
}

var stdoutMu sync.Mutex

// ProcessJobs runs jobs on a pool of concurrency workers and returns one result per job
// in input order. Jobs not started before ctx is done report the context error.
func ProcessJobs(ctx context.Context, client *http.Client, jobs []config.Job, defaults config.Defaults, force bool) []Result {
	concurrency := defaults.Concurrency
	if concurrency <= 0 {
		concurrency = config.DefaultConcurrency
	}
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	type task struct {
		job   config.Job
		index int
	}

	tasks := make(chan task, len(jobs))
	results := make([]Result, len(jobs))

	for i, j := range jobs {
		tasks <- task{index: i, job: j}
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if err := ctx.Err(); err != nil {
					results[t.index] = Result{Job: t.job.Name, Err: err}
					continue
				}

				res := ProcessJob(client, t.job, defaults, force)
				if res.Err != nil {
					log.Error().Err(res.Err).Str("job", t.job.Name).Msg("Job failed")
				}
				results[t.index] = res
			}
		}()
	}
	wg.Wait()

	return results
}

// ProcessJob converts the documents of a single job and writes its outputs.
// Remote inputs are downloaded with client. An existing output file is kept unless force is set.
func ProcessJob(client *http.Client, job config.Job, defaults config.Defaults, force bool) Result {
	res := Result{Job: job.Name, Output: job.Output}

	if job.Output != "" && !force {
		if info, err := os.Stat(job.Output); err == nil && info.Size() > 0 {
			log.Debug().Str("job", job.Name).Str("output", job.Output).Msg("Output exists, skipping")
			res.Skipped = true
			return res
		}
	}

	opts, wopts, err := jobOptions(job, defaults)
	if err != nil {
		res.Err = err
		return res
	}

	sources, err := jobSources(client, job)
	if err != nil {
		res.Err = err
		return res
	}

	items, err := ConvertAll(sources, opts)
	if err != nil {
		res.Err = errors.WithMessage(err, job.Name)
		return res
	}
	res.Documents = len(items)

	data, err := Marshal(items, wopts)
	if err != nil {
		res.Err = errors.WithMessage(err, job.Name)
		return res
	}

	if err := writeOutput(job.Output, data); err != nil {
		res.Err = err
		return res
	}

	if job.Preview != "" {
		if err := writePreviewFile(job.Preview, items, defaults.PreviewSize); err != nil {
			res.Err = errors.WithMessage(err, job.Name)
			return res
		}
	}

	log.Info().
		Str("job", job.Name).
		Int("documents", res.Documents).
		Str("format", string(wopts.Format)).
		Str("output", job.Output).
		Msg("Job converted")

	return res
}

func jobOptions(job config.Job, defaults config.Defaults) (Options, WriteOptions, error) {
	kind, err := convert.ParseKind(job.Kind)
	if err != nil {
		return Options{}, WriteOptions{}, err
	}

	dialect := job.Dialect
	if dialect == "" {
		dialect = defaults.Dialect
	}
	d, err := convert.ParseDialect(dialect)
	if err != nil {
		return Options{}, WriteOptions{}, err
	}

	format := job.Format
	if format == "" {
		format = defaults.Format
	}
	f, err := ParseFormat(format)
	if err != nil {
		return Options{}, WriteOptions{}, err
	}

	return Options{Kind: kind, Dialect: d, Command: job.Command},
		WriteOptions{Format: f, Indent: defaults.Indent, Minify: defaults.Minify},
		nil
}

func jobSources(client *http.Client, job config.Job) ([]any, error) {
	if job.Document != nil {
		log.Debug().Str("job", job.Name).Msg("Using inline document from config")
		return FromNode(job.Document)
	}
	if IsRemote(job.Input) {
		if client == nil {
			client = NewHTTPClient()
		}
		return Fetch(client, job.Input)
	}
	return ReadFile(job.Input)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		stdoutMu.Lock()
		defer stdoutMu.Unlock()
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func writePreviewFile(path string, items []Item, size int) error {
	if size <= 0 {
		size = config.DefaultPreviewSize
	}

	var buf bytes.Buffer
	if err := WritePreview(&buf, Shapes(items), size); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
