package releasemanager

import (
	"github.com/Masterminds/semver/v3"
)

// findLatest returns the greatest release of the list, or nil when there's none.
// The list comes in no particular order: on equal versions the first one wins.
func (up *Updater) findLatest(rels []SourceRelease) *Release {
	var latest *Release
	for _, rel := range rels {
		if rel == nil {
			log.Print("Empty release instance!")
			continue
		}
		candidate := newReleaseFromSource(rel)
		if !up.allowed(candidate) {
			continue
		}
		if latest == nil || candidate.GreaterThan(latest) {
			latest = candidate
		}
	}
	return latest
}

// allowed checks the release against the version constraint, if any
func (up *Updater) allowed(rel *Release) bool {
	if up.constraint == nil {
		return true
	}
	ver, err := semver.NewVersion(rel.Version())
	if err != nil {
		log.Printf("Skip version not adopting semver: %s", rel.Version())
		return false
	}
	if !up.constraint.Check(ver) {
		log.Printf("Skip %s not matching constraint %s", rel.Version(), up.constraint)
		return false
	}
	return true
}
