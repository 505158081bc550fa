package updater

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
)

// mappingFile is the on-disk shape of the authoritative mapping:
//
//	agencies:
//	  mec: https://www.gov.br/mec/pt-br/assuntos/noticias
type mappingFile struct {
	Agencies map[string]string `yaml:"agencies"`
}

// LoadMapping reads the authoritative agency mapping from a YAML file.
// A missing or malformed file aborts the run.
func LoadMapping(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mapping %s: %w", path, err)
	}

	var mf mappingFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parsing mapping %s: %w", path, err)
	}
	if mf.Agencies == nil {
		mf.Agencies = map[string]string{}
	}
	return mf.Agencies, nil
}

// SaveMapping writes the mapping back out with agencies sorted by code, so
// diffs against the previous file stay readable.
func SaveMapping(agencies map[string]string, path string) error {
	codes := make([]string, 0, len(agencies))
	for code := range agencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	ms := yaml.MapSlice{}
	for _, code := range codes {
		ms = append(ms, yaml.MapItem{Key: code, Value: agencies[code]})
	}

	data, err := yaml.Marshal(map[string]yaml.MapSlice{"agencies": ms})
	if err != nil {
		return fmt.Errorf("encoding mapping: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing mapping %s: %w", path, err)
	}
	return nil
}
