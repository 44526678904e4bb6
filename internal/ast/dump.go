package ast

import (
	"regexp"

	"github.com/sanity-io/litter"
)

var dumpOptions = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
	FieldExclusions:   regexp.MustCompile(`^StartToken$`),
	Separator:         " ",
}

// Dump renders a tree for debugging output. Source positions are left out.
func Dump(nodes ...Node) string {
	return dumpOptions.Sdump(nodes)
}
