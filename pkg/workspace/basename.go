package workspace

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var hexSuffixPattern = regexp.MustCompile(`^(.*)\.([0-9a-fA-F]+)$`)

// parseBasename splits a document stem into its trueBase and, if present,
// its trailing hex suffix. An empty trueBase (stem ".abc") is rejected by
// returning ok=false.
func parseBasename(stem string) (trueBase, hex string, hasHex, ok bool) {
	if m := hexSuffixPattern.FindStringSubmatch(stem); m != nil {
		if m[1] == "" {
			return "", "", false, false
		}
		return m[1], m[2], true, true
	}
	if stem == "" {
		return "", "", false, false
	}
	return stem, "", false, true
}

// isOwnedBy reports whether filename f would be treated as a content file
// of the document with base b: f starts with b, is not itself a .markhor
// file, and the remainder after b has the shape ".<ext>" or ".<hex>.<ext>"
// with a purely hex interior segment.
func isOwnedBy(f, b string) bool {
	if strings.HasSuffix(f, ".markhor") {
		return false
	}
	if !strings.HasPrefix(f, b) {
		return false
	}
	rest := f[len(b):]
	if rest == "" || rest[0] != '.' {
		return false
	}
	rest = rest[1:] // drop the leading dot

	// rest is either "<ext>" (no interior dot) or "<hex>.<ext>".
	dot := strings.IndexByte(rest, '.')
	if dot < 0 {
		// "<ext>" shape: any non-empty remainder qualifies.
		return rest != ""
	}
	hex := rest[:dot]
	ext := rest[dot+1:]
	if hex == "" || ext == "" {
		return false
	}
	return isHex(hex)
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return false
		}
	}
	return true
}

// checkConflicts scans dir once and applies R1-R4 (in precedence order) for
// a prospective document base `base` (== trueBase, or trueBase+"."+hex).
func checkConflicts(dir, base string) error {
	trueBase, hex, hasHex, ok := parseBasename(base)
	if !ok {
		return ErrNoFileStem
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var r2Path string
	baseDocExists := false
	var suffixedDocHexes []string

	for _, e := range entries {
		name := e.Name()

		// R1: exact metadata-file collision.
		if name == base+".markhor" {
			return &ConflictError{Rule: RuleR1, Path: filepath.Join(dir, name)}
		}

		// R2 candidate: would this entry be adopted as one of our content files?
		if r2Path == "" && isOwnedBy(name, base) {
			r2Path = filepath.Join(dir, name)
		}

		// Classify sibling .markhor files for R3/R4.
		if stem, isMarkhor := strings.CutSuffix(name, ".markhor"); isMarkhor {
			sb, sh, sHasHex, sOK := parseBasename(stem)
			if !sOK {
				continue
			}
			if sb != trueBase {
				continue
			}
			if sHasHex {
				suffixedDocHexes = append(suffixedDocHexes, sh)
			} else {
				baseDocExists = true
			}
		}
	}

	if r2Path != "" {
		return &ConflictError{Rule: RuleR2, Path: r2Path}
	}

	if hasHex {
		// R3: creating trueBase.hex.markhor when trueBase.markhor exists.
		if baseDocExists {
			return &ConflictError{Rule: RuleR3, TrueBase: trueBase, Hex: hex}
		}
	} else {
		// R4: creating trueBase.markhor when any trueBase.<hex>.markhor exists.
		if len(suffixedDocHexes) > 0 {
			return &ConflictError{Rule: RuleR4, TrueBase: trueBase, Hex: suffixedDocHexes[0]}
		}
	}

	return nil
}
