package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/util/yaml"

	"github.com/henderiw/shipzone/pkg/catalog"
	"github.com/henderiw/shipzone/pkg/zone"
)

// DefaultFile is the catalog file name used when none is configured.
const DefaultFile = "ListOfShippingZipCodeRanges.json"

const decoderBufferSize = 4096

type wireCode struct {
	Code int `json:"code"`
}

// wireEntry is one catalog element. The bounds are given either as
// lowerRange/upperRange objects or as a "lower-upper" range string.
type wireEntry struct {
	ID         *int64            `json:"id,omitempty"`
	LowerRange *wireCode         `json:"lowerRange,omitempty"`
	UpperRange *wireCode         `json:"upperRange,omitempty"`
	Range      string            `json:"range,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`
}

// File reads a catalog from a JSON or YAML file on every call to Ranges.
type File struct {
	path     string
	selector labels.Selector
	logger   zerolog.Logger
}

type FileOption func(*File)

// WithSelector limits the ranges to catalog entries whose labels match s.
func WithSelector(s labels.Selector) FileOption {
	return func(f *File) {
		f.selector = s
	}
}

func WithLogger(l zerolog.Logger) FileOption {
	return func(f *File) {
		f.logger = l
	}
}

func NewFile(path string, opts ...FileOption) *File {
	if path == "" {
		path = DefaultFile
	}
	f := &File{
		path:     path,
		selector: labels.Everything(),
		logger:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *File) Path() string { return f.path }

// Ranges returns the ranges of the catalog entries matching the selector,
// sorted by lower then upper bound.
func (f *File) Ranges() ([]zone.Range, error) {
	c, err := f.Catalog()
	if err != nil {
		return nil, err
	}
	selected, err := catalog.New(c.GetByLabel(f.selector), nil)
	if err != nil {
		return nil, DecodeError{Path: f.path, Index: -1, Err: err}
	}
	f.logger.Debug().
		Str("path", f.path).
		Str("selector", f.selector.String()).
		Int("entries", c.Count()).
		Int("selected", selected.Count()).
		Msg("catalog loaded")
	return selected.Ranges(), nil
}

// Catalog reads and decodes the whole file.
func (f *File) Catalog() (catalog.Catalog, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		f.logger.Error().Str("path", f.path).Err(err).Msg("failed to open catalog")
		return nil, SourceUnavailableError{Path: f.path, Err: err}
	}
	defer fh.Close()

	c, err := decode(f.path, fh)
	if err != nil {
		f.logger.Error().Str("path", f.path).Err(err).Msg("failed to decode catalog")
		return nil, err
	}
	return c, nil
}

func decode(path string, r io.Reader) (catalog.Catalog, error) {
	var wire []wireEntry
	if err := yaml.NewYAMLOrJSONDecoder(r, decoderBufferSize).Decode(&wire); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, DecodeError{Path: path, Index: -1, Err: err}
		}
	}

	// entries without an id are numbered after the highest explicit one
	var nextID int64
	for _, w := range wire {
		if w.ID != nil && *w.ID >= nextID {
			nextID = *w.ID + 1
		}
	}

	var errm error
	entries := make(catalog.Entries, 0, len(wire))
	for i, w := range wire {
		id := nextID
		if w.ID != nil {
			id = *w.ID
		} else {
			nextID++
		}
		e, err := w.entry(id)
		if err != nil {
			errm = errors.Join(errm, DecodeError{Path: path, Index: i, Err: err})
			continue
		}
		entries = append(entries, e)
	}
	if errm != nil {
		return nil, errm
	}

	c, err := catalog.New(entries, nil)
	if err != nil {
		return nil, DecodeError{Path: path, Index: -1, Err: err}
	}
	return c, nil
}

func (w wireEntry) entry(id int64) (catalog.Entry, error) {
	var r zone.Range
	var err error
	switch {
	case w.Range != "":
		if w.LowerRange != nil || w.UpperRange != nil {
			return nil, fmt.Errorf("range %q cannot be combined with lowerRange/upperRange", w.Range)
		}
		r, err = zone.ParseRange(w.Range)
	case w.LowerRange == nil:
		return nil, fmt.Errorf("missing lowerRange")
	case w.UpperRange == nil:
		return nil, fmt.Errorf("missing upperRange")
	default:
		r, err = zone.NewRange(w.LowerRange.Code, w.UpperRange.Code)
	}
	if err != nil {
		return nil, err
	}
	return catalog.NewEntry(id, r, labels.Set(w.Labels)), nil
}
