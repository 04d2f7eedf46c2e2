package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// EnvAPIKey overrides the stored API key when set
const EnvAPIKey = "TMDB_API_KEY"

// File is the optional jetflix.hcl configuration. Unset attributes leave
// the effective settings untouched.
type File struct {
	APIKey          *string `hcl:"api_key,optional"`
	ContentLanguage *string `hcl:"language,optional"`
	RandomPages     *bool   `hcl:"random_pages,optional"`
	MaxRandomPage   *int    `hcl:"max_random_page,optional"`
	HighlightID     *int64  `hcl:"highlight_id,optional"`
	BaseURL         *string `hcl:"base_url,optional"`
	TimeoutSeconds  *int    `hcl:"timeout_seconds,optional"`
	Language        *string `hcl:"ui_language,optional"`
}

// LoadFile parses the HCL file at path. An empty path or a missing file
// yields an empty File.
func LoadFile(path string) (*File, error) {
	var f File
	if path == "" {
		return &f, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &f, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	diags = gohcl.DecodeBody(hclFile.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &f, nil
}

// Apply layers every attribute present in the file over s for this
// process. Nothing is written to the stored preferences.
func (f *File) Apply(s *Settings) {
	if f == nil {
		return
	}
	s.Override(Overrides{
		APIKey:          f.APIKey,
		ContentLanguage: f.ContentLanguage,
		RandomPages:     f.RandomPages,
		MaxRandomPage:   f.MaxRandomPage,
		HighlightID:     f.HighlightID,
		BaseURL:         f.BaseURL,
		TimeoutSeconds:  f.TimeoutSeconds,
		Language:        f.Language,
	})
}

// ApplyEnv applies environment overrides using lookup, usually os.LookupEnv
func ApplyEnv(s *Settings, lookup func(string) (string, bool)) {
	if key, ok := lookup(EnvAPIKey); ok && key != "" {
		s.Override(Overrides{APIKey: &key})
	}
}
