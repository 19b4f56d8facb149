package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/murkotick/storefront/internal/app/catalog/domain"
)

//go:embed products.json
var embeddedDataset []byte

// ErrUnsupportedFormat is returned for dataset files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Format is the encoding of a dataset document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Dataset is the whole read-only catalog input: category descriptors and
// product records, both in source order.
type Dataset struct {
	Categories []domain.Category `json:"categories" yaml:"categories"`
	Products   []domain.Product  `json:"products" yaml:"products"`
}

// Validate checks product and category invariants.
func (d Dataset) Validate() error {
	return errors.Join(
		domain.ValidateProducts(d.Products),
		domain.ValidateCategories(d.Categories),
	)
}

// Default returns the dataset compiled into the binary.
func Default() (Dataset, error) {
	const op = "dataset.Default"

	d, err := Parse(embeddedDataset, FormatJSON)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

// LoadFile reads a dataset from disk, picking the decoder by extension.
func LoadFile(path string) (Dataset, error) {
	const op = "dataset.LoadFile"

	format, err := formatFromPath(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", op, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", op, err)
	}

	d, err := Parse(b, format)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %s: %w", op, path, err)
	}
	return d, nil
}

// Parse decodes and validates a dataset document.
func Parse(b []byte, format Format) (Dataset, error) {
	var d Dataset

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return Dataset{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return Dataset{}, err
		}
	default:
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// Open loads the dataset at path, or the embedded one when path is empty.
// Products referencing undeclared categories are kept and reported at warn level.
func Open(path string, log *zap.Logger) (Dataset, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		d   Dataset
		err error
	)
	if path == "" {
		d, err = Default()
	} else {
		d, err = LoadFile(path)
	}
	if err != nil {
		return Dataset{}, err
	}

	if unknown := domain.UnknownCategories(d.Products, d.Categories); len(unknown) > 0 {
		log.Warn("products reference undeclared categories", zap.Strings("categories", unknown))
	}
	log.Debug("dataset loaded",
		zap.String("path", path),
		zap.Int("products", len(d.Products)),
		zap.Int("categories", len(d.Categories)),
	)
	return d, nil
}

func formatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}
