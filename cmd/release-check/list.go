package main

import (
	"context"
	"os"

	"github.com/eivindveg/go-releasemanager"
	"github.com/jedib0t/go-pretty/v6/table"
)

func listReleases(ctx context.Context, source releasemanager.Source, repo releasemanager.Repository) error {
	rels, err := source.ListReleases(ctx, repo)
	if err != nil {
		return err
	}
	releases := make([]*releasemanager.Release, 0, len(rels))
	for _, rel := range rels {
		releases = append(releases, releasemanager.NewRelease(rel.GetTagName(), rel.GetURL(), rel.GetPrerelease()))
	}
	releasemanager.SortReleases(releases)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Version", "Pre-release", "URL"})
	for _, release := range releases {
		t.AppendRow(table.Row{release.Version(), release.Prerelease, release.URL})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	return nil
}
