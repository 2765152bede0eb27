package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/sunderapp/sunder/internal/category"
	"github.com/sunderapp/sunder/internal/config"
	"github.com/sunderapp/sunder/internal/sizer"
	"github.com/sunderapp/sunder/internal/types"
)

// ErrScanInProgress is returned when a smart scan is requested while another
// one is still running.
var ErrScanInProgress = errors.New("scan already in progress")

// unknownName replaces folder names that cannot be decoded.
const unknownName = "(unknown)"

// subscriber wraps a channel with safe close handling. The mutex makes send
// and close mutually exclusive, so a subscriber going away mid-broadcast can
// never turn into a send on a closed channel.
type subscriber struct {
	mu     sync.Mutex
	ch     chan *types.ScanProgress
	closed bool
}

func (sub *subscriber) close() {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed {
		return
	}
	sub.closed = true
	close(sub.ch)
}

func (sub *subscriber) send(progress *types.ScanProgress) bool {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.closed {
		return false
	}
	// Non-blocking even under the lock: a full buffer drops the event
	select {
	case sub.ch <- progress:
		return true
	default:
		return false
	}
}

// Scanner orchestrates smart scans of the home directory: it enumerates
// top-level folders, sizes each one, classifies it, and broadcasts progress.
type Scanner struct {
	cfg   *config.Config
	sizer sizer.Sizer

	// Single-flight guard: only one scan runs at a time
	mu       sync.Mutex
	scanning bool

	// Progress subscribers
	subMu       sync.RWMutex
	subscribers []*subscriber
}

// NewScanner creates a new scanner service
func NewScanner(cfg *config.Config, sz sizer.Sizer) *Scanner {
	return &Scanner{
		cfg:   cfg,
		sizer: sz,
	}
}

// HomeDir resolves the current user's home directory.
func (s *Scanner) HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return home, nil
}

// scanRoot returns the directory a smart scan operates on: the configured
// override when set, otherwise the home directory.
func (s *Scanner) scanRoot() (string, error) {
	if s.cfg.ScanRoot != "" {
		return s.cfg.ScanRoot, nil
	}
	return s.HomeDir()
}

// Scanning reports whether a scan is currently running.
func (s *Scanner) Scanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanning
}

// Subscribe subscribes to progress updates. Delivery is best-effort: a
// subscriber that stops draining its channel misses events rather than
// slowing the scan down.
func (s *Scanner) Subscribe() chan *types.ScanProgress {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	sub := &subscriber{
		ch: make(chan *types.ScanProgress, 10),
	}
	s.subscribers = append(s.subscribers, sub)
	return sub.ch
}

// Unsubscribe removes a subscriber and closes its channel
func (s *Scanner) Unsubscribe(ch chan *types.ScanProgress) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for i, sub := range s.subscribers {
		if sub.ch == ch {
			// Remove from slice first, then close safely
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			sub.close()
			break
		}
	}
}

// broadcast sends progress to all subscribers
func (s *Scanner) broadcast(progress *types.ScanProgress) {
	s.subMu.RLock()
	// Make a copy of the slice to avoid holding lock during send
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.RUnlock()

	for _, sub := range subs {
		sub.send(progress)
	}
}

// scanOutcome carries the worker's result back to the caller.
type scanOutcome struct {
	result *types.ScanResult
	err    error
}

// SmartScan scans the resolved scan root and returns folders sorted by
// descending size. The walk itself runs on a worker goroutine; the calling
// goroutine blocks until the worker hands the result back. Cancellation is
// checked between folders, not mid-sizing.
func (s *Scanner) SmartScan(ctx context.Context) (*types.ScanResult, error) {
	s.mu.Lock()
	if s.scanning {
		s.mu.Unlock()
		return nil, ErrScanInProgress
	}
	s.scanning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.scanning = false
		s.mu.Unlock()
	}()

	root, err := s.scanRoot()
	if err != nil {
		return nil, err
	}

	resCh := make(chan scanOutcome, 1)
	go func() {
		result, err := s.runScan(ctx, root)
		resCh <- scanOutcome{result: result, err: err}
	}()

	out := <-resCh
	return out.result, out.err
}

// runScan executes the actual scan
func (s *Scanner) runScan(ctx context.Context, root string) (*types.ScanResult, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("could not list scan root %s: %w", root, err)
	}

	// The child set is fixed at enumeration; top-level non-directories are
	// ignored.
	var children []os.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			children = append(children, entry)
		}
	}

	totalFolders := uint64(len(children))
	folders := make([]types.CategorizedFolder, 0, len(children))
	var totalSizeBytes uint64

	for i, child := range children {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		name := child.Name()
		if !utf8.ValidString(name) {
			name = unknownName
		}
		path := filepath.Join(root, child.Name())

		scanned := uint64(i)
		s.broadcast(&types.ScanProgress{
			ScannedFolders: scanned,
			TotalFolders:   totalFolders,
			Percent:        float64(scanned) / float64(totalFolders) * 100,
			CurrentFolder:  name,
		})

		sizeBytes := s.sizer.Size(path)
		totalSizeBytes += sizeBytes

		folders = append(folders, types.CategorizedFolder{
			Name:      name,
			Path:      path,
			SizeBytes: sizeBytes,
			Category:  string(category.Classify(name)),
		})
	}

	// Terminal event; also the only event for an empty root, where per-child
	// percent arithmetic would divide by zero.
	s.broadcast(&types.ScanProgress{
		ScannedFolders: totalFolders,
		TotalFolders:   totalFolders,
		Percent:        100,
		CurrentFolder:  "",
	})

	// Stable: equal sizes keep enumeration order
	sort.SliceStable(folders, func(i, j int) bool {
		return folders[i].SizeBytes > folders[j].SizeBytes
	})

	log.Printf("scan complete: %s across %d folders", humanize.Bytes(totalSizeBytes), len(folders))

	return &types.ScanResult{
		TotalSizeBytes: totalSizeBytes,
		Folders:        folders,
	}, nil
}
