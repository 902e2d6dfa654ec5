package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"

	"github.com/quillfox/dreambuild/internal/model"
)

const buildFileSuffix = "_builds.json"

var errInvalidJSON = errors.New("invalid JSON document")

// buildFilePath returns the per-character collection path under a root,
// following the <character-lowercase>_builds.json convention.
func buildFilePath(root, character string) string {
	return filepath.Join(root, strings.ToLower(character)+buildFileSuffix)
}

// loadBuildDir reads every *_builds.json under root, keyed by lowercase
// character name. A missing directory yields an empty map; an unreadable
// or malformed file is logged and skipped so one bad collection does not
// block the rest.
func (c *Catalog) loadBuildDir(root string, source model.Source) map[string][]*model.Build {
	out := make(map[string][]*model.Build)

	entries, err := os.ReadDir(root)
	if err != nil {
		if !os.IsNotExist(err) {
			c.log.Warn().Str("dir", root).Err(err).Msg("skipping unreadable build directory")
		}
		return out
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), buildFileSuffix) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		builds, err := loadBuildFile(path, source)
		if err != nil {
			c.log.Warn().Str("file", path).Err(err).Msg("skipping build file")
			continue
		}
		character := strings.ToLower(strings.TrimSuffix(entry.Name(), buildFileSuffix))
		out[character] = builds
	}
	return out
}

// loadBuildFile decodes one collection document. Each build keeps its
// raw JSON for structural validation.
func loadBuildFile(path string, source model.Source) ([]*model.Build, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if !gjson.ValidBytes(data) {
		return nil, &LoadError{Path: path, Err: errInvalidJSON}
	}

	var builds []*model.Build
	for _, raw := range gjson.GetBytes(data, "builds").Array() {
		b := &model.Build{}
		if err := sonic.UnmarshalString(raw.Raw, b); err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		b.Raw = []byte(raw.Raw)
		b.Source = source
		builds = append(builds, b)
	}
	return builds, nil
}

func (c *Catalog) bundled() map[string][]*model.Build {
	if c.c.bundled == nil {
		c.c.bundled = c.loadBuildDir(c.buildsDir, model.SourceBundled)
	}
	return c.c.bundled
}

func (c *Catalog) custom() map[string][]*model.Build {
	if c.c.custom == nil {
		c.c.custom = c.loadBuildDir(c.customDir, model.SourceCustom)
	}
	return c.c.custom
}

// BundledFor returns the read-only bundled builds for a character.
// Unknown characters yield an empty list, never an error.
func (c *Catalog) BundledFor(character string) []*model.Build {
	return c.bundled()[strings.ToLower(character)]
}

// CustomFor returns the user-authored builds for a character.
func (c *Catalog) CustomFor(character string) []*model.Build {
	return c.custom()[strings.ToLower(character)]
}

// BuildsFor returns the merged view for a character: bundled builds
// first, then custom. Lookup is case-insensitive.
func (c *Catalog) BuildsFor(character string) []*model.Build {
	key := strings.ToLower(character)
	bundled := c.bundled()[key]
	custom := c.custom()[key]
	merged := make([]*model.Build, 0, len(bundled)+len(custom))
	merged = append(merged, bundled...)
	return append(merged, custom...)
}

// AllBuilds returns the merged view for every known character, keyed by
// lowercase name. Characters with only custom builds still appear.
func (c *Catalog) AllBuilds() map[string][]*model.Build {
	merged := make(map[string][]*model.Build)
	for character, builds := range c.bundled() {
		merged[character] = append([]*model.Build(nil), builds...)
	}
	for character, builds := range c.custom() {
		merged[character] = append(merged[character], builds...)
	}
	return merged
}

// CharacterNames returns every character that has at least one build in
// either root, lowercase, sorted.
func (c *Catalog) CharacterNames() []string {
	names := make(map[string]bool)
	for character := range c.bundled() {
		names[character] = true
	}
	for character := range c.custom() {
		names[character] = true
	}
	return sortedKeys(names)
}

// IsCustom reports whether the named build for a character lives in the
// custom root.
func (c *Catalog) IsCustom(character, buildName string) bool {
	for _, b := range c.CustomFor(character) {
		if b.Name == buildName {
			return true
		}
	}
	return false
}

// SaveCustomBuild upserts a build into the character's custom collection
// by exact name and rewrites the whole collection file. The custom cache
// is invalidated so the next read reloads from disk. Returns the path of
// the written file.
func (c *Catalog) SaveCustomBuild(character string, build *model.Build) (string, error) {
	if err := os.MkdirAll(c.customDir, 0o755); err != nil {
		return "", &LoadError{Path: c.customDir, Err: err}
	}

	path := buildFilePath(c.customDir, character)
	doc := model.BuildFile{Character: displayName(character)}
	if existing, err := os.ReadFile(path); err == nil {
		if err := sonic.Unmarshal(existing, &doc); err != nil {
			// Corrupt collection: start fresh rather than fail the save.
			doc = model.BuildFile{Character: displayName(character)}
		}
	}

	build.Custom = true
	replaced := false
	for i, b := range doc.Builds {
		if b.Name == build.Name {
			doc.Builds[i] = build
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Builds = append(doc.Builds, build)
	}

	if err := writeBuildFile(path, &doc); err != nil {
		return "", err
	}
	c.c.custom = nil
	return path, nil
}

// DeleteCustomBuild removes a custom build by exact name. It reports
// whether a build was found and removed; deleting a build that does not
// exist is a no-op, not an error.
func (c *Catalog) DeleteCustomBuild(character, buildName string) (bool, error) {
	path := buildFilePath(c.customDir, character)
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil
	}
	var doc model.BuildFile
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return false, nil
	}

	kept := doc.Builds[:0]
	for _, b := range doc.Builds {
		if b.Name != buildName {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(doc.Builds) {
		return false, nil
	}
	doc.Builds = kept

	if err := writeBuildFile(path, &doc); err != nil {
		return false, err
	}
	c.c.custom = nil
	return true, nil
}

func writeBuildFile(path string, doc *model.BuildFile) error {
	if doc.Builds == nil {
		doc.Builds = []*model.Build{}
	}
	data, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// displayName capitalizes a character key for the collection document.
func displayName(character string) string {
	if character == "" {
		return ""
	}
	lower := strings.ToLower(character)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
