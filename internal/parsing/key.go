package parsing

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CatalogKey turns the path of a SID file inside the collection rooted at
// root into the key used by STIL.txt, BUGlist.txt and Songlengths.md5.
//
// Example: root "/data/C64Music", path "/data/C64Music/MUSICIANS/H/Hubbard_Rob/Commando.sid"
// gives "/MUSICIANS/H/Hubbard_Rob/Commando.sid".
//
// A relative path is looked up from the working directory first and taken
// as relative to root otherwise, so "MUSICIANS/H/Hubbard_Rob/Commando.sid"
// gives the same key. A path that already looks like a key (starts with "/"
// and is not under root) is cleaned and returned as is.
func CatalogKey(root, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	clean := filepath.Clean(path)
	if root != "" {
		if key, ok := keyUnder(filepath.Clean(root), clean); ok {
			return key, nil
		}
		if !filepath.IsAbs(clean) {
			absRoot, rerr := filepath.Abs(root)
			absPath, perr := filepath.Abs(clean)
			if rerr == nil && perr == nil {
				if key, ok := keyUnder(absRoot, absPath); ok {
					return key, nil
				}
			}
			if !escapes(clean) {
				return "/" + filepath.ToSlash(clean), nil
			}
		}
	}

	key := filepath.ToSlash(clean)
	if !strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("path %q is not inside collection root %q", path, root)
	}
	return key, nil
}

func keyUnder(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || escapes(rel) {
		return "", false
	}
	return "/" + filepath.ToSlash(rel), true
}

// escapes reports whether the relative path rel leaves its base directory.
func escapes(rel string) bool {
	return rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
