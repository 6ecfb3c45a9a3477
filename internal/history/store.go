// Package history keeps a local journal of deployments this tool has
// created. The journal is advisory: it never gates a deployment, and the
// orchestration service remains the source of truth for rollout state.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/withlaunch/bluectl/internal/logging"
)

const (
	// DefaultFileMode is the default file mode for the journal file
	DefaultFileMode = 0600

	// DefaultTimeout is the default timeout for journal operations
	DefaultTimeout = 1 * time.Second
)

// deploymentBucket is the bucket where deployment records are stored
var deploymentBucket = []byte("deployments")

// Record is one deployment invocation.
type Record struct {
	ID                string    `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	Cluster           string    `json:"cluster"`
	Service           string    `json:"service"`
	Images            []string  `json:"images,omitempty"`
	TaskDefinitionArn string    `json:"task_definition_arn"`
	DeploymentID      string    `json:"deployment_id"`
	Application       string    `json:"application"`
	DeploymentGroup   string    `json:"deployment_group"`
}

// Store is the bbolt-backed deployment journal.
type Store struct {
	db      *bolt.DB
	path    string
	options *Options
}

// Options configures the journal store
type Options struct {
	// Path to the journal file
	Path string
	// File mode for the journal file
	FileMode os.FileMode
	// Timeout for journal operations
	Timeout time.Duration
}

// DefaultPath returns the journal location under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".bluectl", "history.db"), nil
}

// NewStore creates a journal store with the given options
func NewStore(opts *Options) *Store {
	if opts == nil {
		opts = &Options{}
	}
	if opts.FileMode == 0 {
		opts.FileMode = DefaultFileMode
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Store{
		path:    opts.Path,
		options: opts,
	}
}

// Open initializes the journal database
func (s *Store) Open() error {
	logging.Debug("Opening deployment journal", zap.String("path", s.path))

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for journal: %w", err)
	}

	db, err := bolt.Open(s.path, s.options.FileMode, &bolt.Options{Timeout: s.options.Timeout})
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	s.db = db

	err = s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(deploymentBucket)
		if err != nil {
			return fmt.Errorf("failed to create deployments bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		s.db.Close()
		return fmt.Errorf("failed to initialize journal: %w", err)
	}

	return nil
}

// Close closes the journal database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append stores a deployment record. The record's ID and timestamp are
// filled in when empty. Keys are time-prefixed so iteration order is
// chronological.
func (s *Store) Append(rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode deployment record: %w", err)
	}

	// Fixed-width nanosecond prefix keeps cursor order chronological.
	key := fmt.Sprintf("%020d/%s", rec.CreatedAt.UnixNano(), rec.ID)

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(deploymentBucket)
		if b == nil {
			return fmt.Errorf("deployments bucket does not exist")
		}
		if err := b.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to store deployment record: %w", err)
		}
		return nil
	})
}

// List returns up to limit records, newest first. A limit of zero or less
// returns everything.
func (s *Store) List(limit int) ([]Record, error) {
	var records []Record

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(deploymentBucket)
		if b == nil {
			return fmt.Errorf("deployments bucket does not exist")
		}

		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(records) >= limit {
				break
			}
			var rec Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to decode deployment record %s: %w", k, err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
