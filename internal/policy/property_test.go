package policy

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propRoot = "/home/user/project"

// Property: climbing out of the root with one or more ".." segments and
// naming a sibling is always denied.
func TestNormalizePath_TraversalAlwaysDenied(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	root := MustRoot(propRoot)

	properties.Property("parent segments escaping root are denied", prop.ForAll(
		func(ups int, name string) bool {
			p := strings.Repeat("../", ups) + "zz_" + name
			_, err := NormalizePath(p, root)
			return err != nil && strings.Contains(err.Error(), "escapes project root")
		},
		gen.IntRange(1, 12),
		gen.Identifier(),
	))

	properties.TestingRun(t)
}

// Property: a path built from plain segments resolves to root joined with
// the cleaned relative path.
func TestNormalizePath_InsideRootIsJoined(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	root := MustRoot(propRoot)

	properties.Property("contained paths equal root joined with the clean relative path", prop.ForAll(
		func(segs []string, dotPrefix bool) bool {
			rel := strings.Join(segs, "/")
			if dotPrefix {
				rel = "./" + rel
			}
			got, err := NormalizePath(rel, root)
			if err != nil {
				return false
			}
			return got == filepath.Join(propRoot, filepath.Clean(rel))
		},
		gen.SliceOf(gen.Identifier()),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: no kind outside the known set is ever allowed.
func TestWhitelist_DefaultDenyProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)
	w := DefaultWhitelist()

	properties.Property("unknown kinds are denied", prop.ForAll(
		func(s string) bool {
			if _, known := domain.ParseIntentKind(s); known {
				return true
			}
			return !w.IsAllowed(domain.IntentKind(s))
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
