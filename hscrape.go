// Package hscrape scrapes a single video-catalogue site and republishes its
// pages as typed records. It copes with loose, drifting markup: lazily loaded
// images, proxied thumbnails, inconsistent pagination and repeated sections.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., sqlite/, http/, markup/).
package hscrape

// DefaultOrigin is the site every relative path is resolved against.
const DefaultOrigin = "https://watchhentai.net"
