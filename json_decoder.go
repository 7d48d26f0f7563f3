package releasemanager

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Decoder turns the raw list of releases into releases
type Decoder interface {
	Decode(body []byte) ([]SourceRelease, error)
}

const releasesSchemaURL = "releases.schema.json"

// releasesSchema only describes the fields we need from the GitHub releases API
const releasesSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["tag_name", "html_url", "prerelease"],
		"properties": {
			"tag_name": {"type": "string", "minLength": 1},
			"html_url": {"type": "string"},
			"prerelease": {"type": "boolean"},
			"draft": {"type": "boolean"}
		}
	}
}`

// JSONRelease is one entry of the GitHub releases API
type JSONRelease struct {
	TagName    string `json:"tag_name"`
	HTMLURL    string `json:"html_url"`
	Prerelease bool   `json:"prerelease"`
	Draft      bool   `json:"draft"`
}

func (r *JSONRelease) GetTagName() string {
	return r.TagName
}

func (r *JSONRelease) GetURL() string {
	return r.HTMLURL
}

func (r *JSONRelease) GetPrerelease() bool {
	return r.Prerelease
}

var _ SourceRelease = &JSONRelease{}

// JSONDecoder decodes the response of the GitHub releases API.
// The whole body is validated first: a single malformed entry rejects the response.
type JSONDecoder struct {
	schema *jsonschema.Schema
}

// NewJSONDecoder compiles the validation schema of the releases API response
func NewJSONDecoder() (*JSONDecoder, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(releasesSchema))
	if err != nil {
		return nil, fmt.Errorf("cannot load releases schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(releasesSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("cannot load releases schema: %w", err)
	}
	schema, err := compiler.Compile(releasesSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("cannot compile releases schema: %w", err)
	}
	return &JSONDecoder{schema: schema}, nil
}

// Decode validates and decodes the body. Drafts are skipped.
func (d *JSONDecoder) Decode(body []byte) ([]SourceRelease, error) {
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if err := d.schema.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var rels []*JSONRelease
	if err := json.Unmarshal(body, &rels); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	releases := make([]SourceRelease, 0, len(rels))
	for _, rel := range rels {
		if rel.Draft {
			log.Printf("Skip draft version %s", rel.TagName)
			continue
		}
		releases = append(releases, rel)
	}
	return releases, nil
}

// Verify interface
var _ Decoder = &JSONDecoder{}
