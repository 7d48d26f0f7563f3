/*
releasemanager detects the information of the latest release via GitHub Releases API and compares it with the running version.
It only tells whether a newer version is published: downloading and installing it is up to the application.

- Releases are listed from GitHub, GitHub Enterprise, Gitea, GitLab or any HTTP server (JSON or YAML manifest)

- Version labels don't need to follow semantic versioning: "1.10" > "1.9" > "1.9-SNAPSHOT"

- A failure to reach the release source is never an error: the application simply gets no update

- A marker file in the application home keeps track of the version of the local data model

Version ordering rules:

  - the dotted core is compared segment by segment, missing segments counting as zero
  - on equal cores, a version without pre-release tag ("2.0") is greater than a tagged one ("2.0-SNAPSHOT")
  - two pre-release tags are compared lexicographically

Migration of the local data is not implemented: the default Migration keeps the stored model version,
so a stale marker is reported stale on every run until a real migration is plugged in.

A small CLI tool as wrapper of this library is available also:
  https://github.com/eivindveg/go-releasemanager/cmd/release-check
*/
package releasemanager
