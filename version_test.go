package releasemanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	fixtures := []struct {
		text       string
		core       string
		prerelease string
	}{
		{"2.0-SNAPSHOT", "2.0.0", "SNAPSHOT"},
		{"2.0", "2.0.0", ""},
		{"v1.10", "1.10.0", ""},
		{"1.2.3.4", "1.2.3.4", ""},
		{"1.0.0-rc.1", "1.0.0", "rc.1"},
		{"1.0.0+build.5", "1.0.0", ""},
		{"nightly", "nightly", ""},
		{"release-candidate", "release", "candidate"},
		{"2.0.RC1", "2.0.RC1", ""},
		{"1.0beta", "1.0beta", ""},
		{"1.0beta-2", "1.0beta", "2"},
		{"", "", ""},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.text, func(t *testing.T) {
			version := ParseVersion(fixture.text)
			assert.Equal(t, fixture.text, version.Original())
			assert.Equal(t, fixture.text, version.String())
			assert.Equal(t, fixture.core, version.Core())
			assert.Equal(t, fixture.prerelease, version.Prerelease())
		})
	}
}

func TestCompareVersions(t *testing.T) {
	fixtures := []struct {
		a, b     string
		expected int
	}{
		{"1.9", "1.10", -1},
		{"1.10", "2.0", -1},
		{"1.9", "2.0", -1},
		{"2.0", "2.0", 0},
		{"2.0", "2.0.0", 0},
		{"v2.0", "2.0", 0},
		{"2.0-SNAPSHOT", "2.0", -1},
		{"1.0beta", "1.0", 1},
		{"2.0", "2.0-SNAPSHOT", 1},
		{"2.0-SNAPSHOT", "2.0-SNAPSHOT", 0},
		{"2.0-SNAPSHOT", "1.5", 1},
		{"2.0-SNAPSHOT", "1.99", 1},
		{"2.0-alpha", "2.0-beta", -1},
		{"2.0-beta", "2.0-SNAPSHOT", 1},
		{"1.2.3.4", "1.2.3", 1},
		{"1.2.3.0", "1.2.3", 0},
		{"1.0.0+build.1", "1.0.0+build.2", 0},
		{"2.0.RC1", "2.0.1", 1},
		{"nightly", "1.0", 1},
		{"alpha", "beta", -1},
		{"", "0", 0},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.a+" vs "+fixture.b, func(t *testing.T) {
			a := ParseVersion(fixture.a)
			b := ParseVersion(fixture.b)
			assert.Equal(t, fixture.expected, CompareVersions(a, b))
			assert.Equal(t, -fixture.expected, CompareVersions(b, a))
			assert.Equal(t, fixture.expected, a.Compare(b))
		})
	}
}

func TestPrereleaseIsLowerThanSameCore(t *testing.T) {
	for _, core := range []string{"0.1", "1.0", "1.9", "1.10", "2.0", "2.0.1", "10.4.2.1"} {
		for _, tag := range []string{"SNAPSHOT", "alpha", "rc1", "beta.2"} {
			tagged := ParseVersion(core + "-" + tag)
			final := ParseVersion(core)
			assert.Truef(t, tagged.LessThan(final), "%s should be lower than %s", tagged, final)
			assert.Truef(t, final.GreaterThan(tagged), "%s should be greater than %s", final, tagged)
			assert.False(t, tagged.Equal(final))
		}
	}
}
