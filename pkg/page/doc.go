// Package page assembles a multi-carousel page from a declarative
// manifest: it builds the document regions (track, controls, indicator
// container, slides), derives each region's responsive visible-count policy
// from a breakpoint table, and constructs one carousel controller per
// region. Which regions autoplay is selected by glob patterns over region
// ids, so a manifest can say "hero" and "service-*" without listing every
// gallery.
//
// A region that fails to assemble is skipped with a warning; it never
// blocks its siblings, matching the carousel's own missing-element policy.
package page
