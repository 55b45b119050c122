// Package guide serves the seven-level Vibe Coding roadmap.
//
// Content is embedded as one YAML file per locale under content/. The
// default locale must be complete; other locales are overlaid on it, so a
// translation only needs the fields it actually translates. Every locale
// must end up with levels MinLevel..MaxLevel, one overview milestone per
// level and the same ordered section keys as the default locale.
//
//	g, err := guide.New(ctx)
//	if err != nil {
//		return err
//	}
//	lc := g.LevelContent(3, i18n.KO)
//
// LevelContent never fails: an out-of-range level yields level 0. Page
// handlers use Level and ParseLevelSegment to answer 404 instead.
package guide
