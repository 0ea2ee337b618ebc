package rules

import (
	"strings"

	m "github.com/mouse-blink/lintel/internal/model"
)

// CheckPackageDoc reports a package clause without a doc comment. Test files
// are exempt.
func CheckPackageDoc(src *Source) []m.Message {
	if src.File == nil || src.File.Doc != nil || strings.HasSuffix(src.Filename, "_test.go") {
		return nil
	}

	return []m.Message{{
		Kind:        m.MissingPackageDoc(src.File.Name.Name),
		Location:    src.location(src.File.Package),
		EndLocation: src.location(src.File.Name.End()),
		Filename:    src.Filename,
	}}
}
