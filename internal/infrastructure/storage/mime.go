package storage

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MimeResolver decides the stored content type of an upload from its bytes.
type MimeResolver struct{}

// Resolve returns the content type to record and whether it is in allowed.
// The type detected from content wins. A client-declared type is accepted
// only when the content is a generic container of it, as with CSV (plain
// text), DOCX (zip) and DOC (OLE storage).
func (MimeResolver) Resolve(data []byte, declared string, allowed []string) (string, bool) {
	detected := mimetype.Detect(data)

	declared = baseType(declared)
	if declared != "" && contains(allowed, declared) {
		if detected.Is(declared) {
			return declared, true
		}
		if declaredMIME := mimetype.Lookup(declared); declaredMIME != nil {
			for m := declaredMIME.Parent(); m != nil && m.Parent() != nil; m = m.Parent() {
				if detected.Is(m.String()) {
					return declared, true
				}
			}
		}
	}

	for _, a := range allowed {
		if detected.Is(a) {
			return a, true
		}
	}
	return detected.String(), false
}

func baseType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
