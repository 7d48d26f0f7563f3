package releasemanager

// Config represents the identity of the running application and where to look for newer releases.
type Config struct {
	// Maintainer is the owner of the repository publishing the releases
	Maintainer string
	// Repository is the name of the repository publishing the releases
	Repository string
	// CurrentVersion is the version label of the running application (example: "2.0-SNAPSHOT")
	CurrentVersion string
	// ReleaseURLTemplate is used to build the page URL of the current release.
	// It defaults to DefaultReleaseTagURL.
	ReleaseURLTemplate string
	// Source where to load the releases from (default to GitHubSource)
	Source Source
	// Constraint is an optional semantic version constraint (example: "~2.0").
	// When set, releases not satisfying it are never offered as an update.
	Constraint string
}
