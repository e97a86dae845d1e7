package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/handiism/modrinth-downloader/internal/config"
	ioutils "github.com/handiism/modrinth-downloader/internal/io"
	"github.com/handiism/modrinth-downloader/internal/model"
	"github.com/handiism/modrinth-downloader/internal/resolver"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
//
// Item is nil for run-level events.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Item    *model.RequestItem
}

// Registry is the remote catalog the Manager resolves items against.
//
// Search returns an empty identifier and a nil error when nothing matched.
// ListVersions narrows the listing to gameVersions when it is non-empty.
// Non-success responses must be returned as errors.
type Registry interface {
	Search(ctx context.Context, query string, category model.Category) (string, error)
	ListVersions(ctx context.Context, projectID string, gameVersions []string) ([]model.ReleaseRecord, error)
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// Manager coordinates a manifest run: lookup, resolution and placement of
// every item through a bounded pool of workers.
type Manager struct {
	settings *config.Settings
	registry Registry
	dryRun   bool

	totalItems    int32
	doneItems     int32
	receivedBytes int64

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
//
// onProgress may be nil. It is called from several workers at once and
// must be safe for concurrent use.
func NewManager(settings *config.Settings, registry Registry, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		registry:   registry,
		onProgress: onProgress,
	}
}

// SetDryRun makes Run resolve items and report their destinations without
// fetching anything or creating directories.
func (m *Manager) SetDryRun(dryRun bool) {
	m.dryRun = dryRun
}

// Run processes every item and returns the tally together with one Outcome
// per item, in input order.
//
// Items are independent: a failing item never stops the others. At most
// settings.MaxConcurrency items are in flight at once. Cancelling ctx makes
// items that have not started yet fail with the context error.
func (m *Manager) Run(ctx context.Context, items []model.RequestItem, target string) (Summary, []Outcome) {
	atomic.StoreInt32(&m.totalItems, int32(len(items)))
	atomic.StoreInt32(&m.doneItems, 0)
	atomic.StoreInt64(&m.receivedBytes, 0)

	limit := m.settings.MaxConcurrency
	if limit < 1 {
		limit = 1
	}

	outcomes := make([]Outcome, len(items))
	claimed := &sync.Map{}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			outcomes[i] = m.processItem(ctx, item, target, claimed)
			atomic.AddInt32(&m.doneItems, 1)
			m.report(outcomes[i])
			return nil // Continue with other items
		})
	}

	_ = g.Wait()

	summary := Summarize(outcomes)
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Finished: %d downloaded, %d skipped, %d failed", summary.Succeeded, summary.Skipped, summary.Failed),
		Level:   LevelInfo,
	})
	return summary, outcomes
}

// Progress returns how many items are done, how many the current run has,
// and how many bytes were received so far.
func (m *Manager) Progress() (done, total int32, bytes int64) {
	return atomic.LoadInt32(&m.doneItems), atomic.LoadInt32(&m.totalItems), atomic.LoadInt64(&m.receivedBytes)
}

// processItem runs one item end to end. claimed holds the destinations
// already taken in this run; only the first item to claim a path writes it.
func (m *Manager) processItem(ctx context.Context, item model.RequestItem, target string, claimed *sync.Map) Outcome {
	out := Outcome{Item: item}

	if err := ctx.Err(); err != nil {
		return m.fail(out, OutcomeTransportFailure, ErrTransport, err)
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Searching %s", item.Query), Level: LevelVerbose, Item: &item})

	projectID, err := m.registry.Search(ctx, item.Query, item.Category)
	if err != nil {
		return m.fail(out, OutcomeLookupFailure, ErrLookup, err)
	}
	if projectID == "" {
		return m.fail(out, OutcomeLookupFailure, ErrLookup, errProjectNotFound)
	}

	res, err := m.resolve(ctx, item, projectID, target)
	if err != nil {
		if errors.Is(err, ErrLookup) {
			out.Kind, out.Err = OutcomeLookupFailure, err
			return out
		}
		return m.fail(out, OutcomeResolutionFailure, ErrResolution, err)
	}
	out.Resolution = res
	out.Path = item.Destination(m.settings.OutputRoot, res)

	if _, taken := claimed.LoadOrStore(out.Path, struct{}{}); taken {
		out.Kind = OutcomeSkipped
		return out
	}

	exists, err := ioutils.Exists(out.Path)
	if err != nil {
		return m.fail(out, OutcomeTransportFailure, ErrTransport, err)
	}
	if exists {
		out.Kind = OutcomeSkipped
		return out
	}

	if m.dryRun {
		out.Kind = OutcomePlanned
		return out
	}

	n, err := m.fetch(ctx, res.File, out.Path)
	out.Bytes = n
	if err != nil {
		return m.fail(out, OutcomeTransportFailure, ErrTransport, err)
	}
	out.Kind = OutcomeSucceeded
	return out
}

// resolve lists the project's releases and picks one. With the version
// filter enabled the narrowed listing is tried first; anything short of an
// exact match there falls back to the full listing.
func (m *Manager) resolve(ctx context.Context, item model.RequestItem, projectID, target string) (model.Resolution, error) {
	if m.settings.UseVersionFilter && target != "" {
		filtered, err := m.registry.ListVersions(ctx, projectID, []string{target})
		if err == nil && len(filtered) > 0 {
			if res, err := resolver.Resolve(item, filtered, target); err == nil && !res.IsFallback {
				return res, nil
			}
		}
		if ctx.Err() != nil {
			return model.Resolution{}, fmt.Errorf("%w: %w", ErrLookup, ctx.Err())
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("No exact match for %s in filtered listing, checking all releases", item.Query), Level: LevelVerbose, Item: &item})
	}

	releases, err := m.registry.ListVersions(ctx, projectID, nil)
	if err != nil {
		return model.Resolution{}, fmt.Errorf("%w: %w", ErrLookup, err)
	}
	if len(releases) == 0 {
		return model.Resolution{}, fmt.Errorf("%w: %w", ErrLookup, errNoReleases)
	}

	return resolver.Resolve(item, releases, target)
}

func (m *Manager) fetch(ctx context.Context, file model.ReleaseFile, dst string) (int64, error) {
	body, err := m.registry.Fetch(ctx, file.URL)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	return ioutils.PlaceStream(ctx, dst, &countingReader{r: body, n: &m.receivedBytes}, m.digest(file))
}

// digest picks the strongest hash the registry published, if verification
// is enabled.
func (m *Manager) digest(file model.ReleaseFile) ioutils.Digest {
	switch {
	case !m.settings.VerifyHashes:
		return ioutils.Digest{}
	case file.SHA512 != "":
		return ioutils.Digest{Algorithm: "sha512", Hex: file.SHA512}
	case file.SHA1 != "":
		return ioutils.Digest{Algorithm: "sha1", Hex: file.SHA1}
	default:
		return ioutils.Digest{}
	}
}

func (m *Manager) fail(out Outcome, kind OutcomeKind, sentinel, err error) Outcome {
	out.Kind = kind
	out.Err = fmt.Errorf("%w: %w", sentinel, err)
	return out
}

func (m *Manager) report(out Outcome) {
	item := out.Item
	switch out.Kind {
	case OutcomeSucceeded:
		msg := fmt.Sprintf("Downloaded: %s", out.Path)
		if out.Resolution.IsFallback {
			msg += fmt.Sprintf(" (fallback, built for %s)", out.Resolution.FallbackLabel)
		}
		m.progress(ProgressEvent{Message: msg, Level: LevelSuccess, Item: &item})
	case OutcomeSkipped:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping existing: %s", out.Path), Level: LevelInfo, Item: &item})
	case OutcomePlanned:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Would download: %s", out.Path), Level: LevelInfo, Item: &item})
	default:
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", item.Query, out.Err), Level: LevelError, Item: &item})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}

type countingReader struct {
	r io.Reader
	n *int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	atomic.AddInt64(c.n, int64(n))
	return n, err
}
