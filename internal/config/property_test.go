package config

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestInterpolateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("identity when the token is absent", prop.ForAll(
		func(path, root string) bool {
			if strings.Contains(path, SourceRootToken) {
				return true
			}
			return Interpolate(path, root) == path
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("result never contains the token", prop.ForAll(
		func(prefix, suffix, root string) bool {
			if strings.Contains(root, SourceRootToken) {
				return true
			}
			path := prefix + SourceRootToken + suffix
			return !strings.Contains(Interpolate(path, root), SourceRootToken)
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMergeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("inline output always wins", prop.ForAll(
		func(inlineOut, wsOut string) bool {
			if inlineOut == "" {
				return true
			}
			merged, err := Merge(Raw{Output: inlineOut}, wsConfig(wsOut))
			return err == nil && merged.Output == inlineOut
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("workspace output wins over defaults when inline is silent", prop.ForAll(
		func(wsOut string) bool {
			if wsOut == "" {
				return true
			}
			merged, err := Merge(Raw{}, wsConfig(wsOut))
			return err == nil && merged.Output == wsOut
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
