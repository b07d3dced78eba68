package ytmusic

import "strings"

// sectionContents walks to the section list of a browse response.
func sectionContents(resp map[string]any) []any {
	return navList(resp,
		"contents", "singleColumnBrowseResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "contents")
}

// parseSections extracts titled sections with their items from a browse
// response, preserving upstream order. Unrecognized shelf shapes are skipped.
func parseSections(resp map[string]any) []Section {
	sections := []Section{}

	for _, shelf := range sectionContents(resp) {
		if carousel := nav(shelf, "musicCarouselShelfRenderer"); carousel != nil {
			section := Section{
				Title: runsText(nav(carousel, "header", "musicCarouselShelfBasicHeaderRenderer", "title")),
				Items: parseItems(navList(carousel, "contents")),
			}
			sections = append(sections, section)
			continue
		}

		if grid := nav(shelf, "gridRenderer"); grid != nil {
			section := Section{
				Title: runsText(nav(grid, "header", "gridHeaderRenderer", "title")),
				Items: parseItems(navList(grid, "items")),
			}
			sections = append(sections, section)
		}
	}

	return sections
}

// parseItems extracts items from shelf or grid contents.
func parseItems(contents []any) []Item {
	items := []Item{}

	for _, entry := range contents {
		if row := nav(entry, "musicTwoRowItemRenderer"); row != nil {
			items = append(items, Item{
				ID:       itemID(row),
				Title:    runsText(nav(row, "title")),
				Subtitle: runsText(nav(row, "subtitle")),
			})
			continue
		}

		if row := nav(entry, "musicResponsiveListItemRenderer"); row != nil {
			items = append(items, Item{
				ID:       navString(row, "playlistItemData", "videoId"),
				Title:    runsText(nav(row, "flexColumns", 0, "musicResponsiveListItemFlexColumnRenderer", "text")),
				Subtitle: runsText(nav(row, "flexColumns", 1, "musicResponsiveListItemFlexColumnRenderer", "text")),
			})
		}
	}

	return items
}

// itemID resolves the content identifier from a two-row item's navigation
// endpoint: a video ID for tracks, a browse ID for albums/playlists/mixes.
func itemID(row any) string {
	if id := navString(row, "navigationEndpoint", "watchEndpoint", "videoId"); id != "" {
		return id
	}
	return navString(row, "navigationEndpoint", "browseEndpoint", "browseId")
}

// parsePlaylists extracts library playlist descriptors from the library
// browse response. Playlist browse IDs carry a "VL" prefix upstream which is
// stripped to yield the bare playlist ID.
func parsePlaylists(resp map[string]any) []Playlist {
	playlists := []Playlist{}

	for _, shelf := range sectionContents(resp) {
		for _, entry := range navList(shelf, "gridRenderer", "items") {
			row := nav(entry, "musicTwoRowItemRenderer")
			if row == nil {
				continue
			}

			id := navString(row, "navigationEndpoint", "browseEndpoint", "browseId")
			if id == "" {
				continue
			}

			playlists = append(playlists, Playlist{
				ID:          strings.TrimPrefix(id, "VL"),
				Title:       runsText(nav(row, "title")),
				Description: runsText(nav(row, "subtitle")),
			})
		}
	}

	return playlists
}
