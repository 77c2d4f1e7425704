package scanner

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/wbagent-labs/wbagent/internal/logger"
)

// Issue records a sub-scanner that skipped its input because the input was
// present but unreadable or malformed. Missing inputs are not issues.
type Issue struct {
	Scanner string
	Path    string
	Err     error
}

func (i Issue) Error() string {
	if i.Path == "" {
		return fmt.Sprintf("%s: %v", i.Scanner, i.Err)
	}
	return fmt.Sprintf("%s: %s: %v", i.Scanner, i.Path, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used to report skipped inputs at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) { s.log = l }
}

// Scanner runs the sub-scanners against one project root.
type Scanner struct {
	root   string
	log    *slog.Logger
	issues []Issue
}

// step is one sub-scanner. A returned error is converted into an Issue and
// never stops the remaining steps.
type step struct {
	name string
	run  func(root string, p *Profile) error
}

// steps run in this order; later steps rely on earlier ones only through
// "fill if empty" rules (README description, pyproject name).
var steps = []step{
	{"manifest", scanPackageJSON},
	{"pyproject", scanPyproject},
	{"docker", scanDocker},
	{"schema", scanSchema},
	{"env", scanEnv},
	{"routes", scanRoutes},
	{"pages", scanPages},
	{"readme", scanReadme},
	{"structure", scanStructure},
}

// New creates a Scanner for root.
func New(root string, opts ...Option) *Scanner {
	s := &Scanner{root: root, log: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory being scanned.
func (s *Scanner) Root() string { return s.root }

// Scan builds a Profile for the root directory. It returns an error only
// when the root itself is missing, not a directory, or unreadable.
func (s *Scanner) Scan() (*Profile, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", s.root)
	}
	if _, err := os.ReadDir(s.root); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.root, err)
	}

	s.issues = nil
	p := NewProfile()
	for _, st := range steps {
		if err := st.run(s.root, p); err != nil {
			s.record(st.name, err)
		}
	}

	p.detectFramework()
	p.computeHasExistingCode()
	return p, nil
}

// Issues returns the inputs skipped during the last Scan.
func (s *Scanner) Issues() []Issue {
	return s.issues
}

func (s *Scanner) record(name string, err error) {
	issue := Issue{Scanner: name, Err: err}
	var pe *pathError
	if errors.As(err, &pe) {
		issue.Path = pe.path
		issue.Err = pe.err
	}
	s.issues = append(s.issues, issue)
	s.log.Debug("scan input skipped", "scanner", name, "path", issue.Path, "err", issue.Err)
}

// Scan is a convenience wrapper around New(root).Scan().
func Scan(root string) (*Profile, error) {
	return New(root).Scan()
}
