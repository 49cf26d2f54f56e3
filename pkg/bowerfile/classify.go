package bowerfile

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// ComponentClassifier decides whether a component.json file holds a legacy
// component(1) manifest rather than a reuse of the filename for the bower
// format. The heuristic is injectable because it is orthogonal to the
// locator's design.
type ComponentClassifier interface {
	IsLegacyComponent(data []byte) bool
}

// AssetClassifier decides whether a main entry names a media asset (image,
// font, audio, video) rather than an entry-point source file.
type AssetClassifier interface {
	IsAsset(filename string) bool
}

// DefaultComponentClassifier sniffs component(1) manifests by the fields
// that only exist in that format.
var DefaultComponentClassifier ComponentClassifier = legacySniffer{}

// DefaultAssetClassifier classifies by file extension.
var DefaultAssetClassifier AssetClassifier = extensionAssets{}

// legacyComponentKeys appear in component(1) manifests but never in bower
// manifests reusing the component.json filename.
var legacyComponentKeys = []string{"repo", "development", "local", "remotes", "paths", "demo"}

type legacySniffer struct{}

func (legacySniffer) IsLegacyComponent(data []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Unparseable content is not classified as legacy; the reader
		// reports it as malformed instead.
		return false
	}
	for _, key := range legacyComponentKeys {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

// assetExtensions are the media extensions rejected in main entries.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".bmp": true, ".ico": true, ".tiff": true, ".svg": true,
	".eot": true, ".ttf": true, ".woff": true, ".woff2": true, ".otf": true,
	".mp3": true, ".ogg": true, ".wav": true, ".mp4": true, ".webm": true,
}

type extensionAssets struct{}

func (extensionAssets) IsAsset(filename string) bool {
	return assetExtensions[strings.ToLower(filepath.Ext(filename))]
}
