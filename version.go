package releasemanager

import (
	"strconv"
	"strings"

	goversion "github.com/hashicorp/go-version"
)

// Version is a parsed release label: a dotted core and an optional pre-release tag.
//
// Versions are totally ordered by CompareVersions. A tagged version ("2.0-SNAPSHOT")
// is always lower than the same core without tag ("2.0").
type Version struct {
	original   string
	core       []string
	prerelease string
}

// ParseVersion builds a Version from a release label. It never fails:
// labels the version parser doesn't understand are split at their first '-',
// and a label without separator is used as the core as a whole.
// A tag is only recognised after a '-': "1.0beta" has no pre-release tag.
func ParseVersion(text string) Version {
	if v, err := goversion.NewVersion(text); err == nil && hasSeparatedPrerelease(text, v) {
		segments := v.Segments()
		core := make([]string, len(segments))
		for i, segment := range segments {
			core[i] = strconv.Itoa(segment)
		}
		return Version{
			original:   text,
			core:       core,
			prerelease: v.Prerelease(),
		}
	}

	core, tag := text, ""
	if i := strings.Index(text, "-"); i >= 0 {
		core, tag = text[:i], text[i+1:]
	}
	return Version{
		original:   text,
		core:       strings.Split(core, "."),
		prerelease: tag,
	}
}

// hasSeparatedPrerelease rejects the loose form where the tag directly follows the core
func hasSeparatedPrerelease(text string, v *goversion.Version) bool {
	return v.Prerelease() == "" || strings.Contains(text, "-"+v.Prerelease())
}

// Original returns the label the version was parsed from.
func (v Version) Original() string {
	return v.original
}

// String returns the original label
func (v Version) String() string {
	return v.original
}

// Core returns the dotted core of the version, without pre-release tag.
func (v Version) Core() string {
	return strings.Join(v.core, ".")
}

// Prerelease returns the pre-release tag, or an empty string for a final release.
func (v Version) Prerelease() string {
	return v.prerelease
}

// Compare returns -1, 0 or 1 whether v is lower, equal or greater than other.
func (v Version) Compare(other Version) int {
	return CompareVersions(v, other)
}

// Equal tests if two versions are equal to each other.
func (v Version) Equal(other Version) bool {
	return CompareVersions(v, other) == 0
}

// LessThan tests if one version is less than another one.
func (v Version) LessThan(other Version) bool {
	return CompareVersions(v, other) < 0
}

// GreaterThan tests if one version is greater than another one.
func (v Version) GreaterThan(other Version) bool {
	return CompareVersions(v, other) > 0
}

// CompareVersions orders two versions. Cores are compared segment by segment,
// missing segments counting as zero. On equal cores, a version without
// pre-release tag wins; two tags are compared lexicographically.
func CompareVersions(a, b Version) int {
	length := len(a.core)
	if len(b.core) > length {
		length = len(b.core)
	}
	for i := 0; i < length; i++ {
		if c := compareSegment(segmentAt(a.core, i), segmentAt(b.core, i)); c != 0 {
			return c
		}
	}

	switch {
	case a.prerelease == b.prerelease:
		return 0
	case a.prerelease == "":
		return 1
	case b.prerelease == "":
		return -1
	}
	return strings.Compare(a.prerelease, b.prerelease)
}

func segmentAt(core []string, i int) string {
	if i < len(core) && core[i] != "" {
		return core[i]
	}
	return "0"
}

// compareSegment compares numeric segments by value. A numeric segment is
// lower than any non-numeric one, and non-numeric segments compare as text.
func compareSegment(a, b string) int {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if na < nb {
			return -1
		}
		if na > nb {
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
