// Package catalog holds the read-only course catalog: categories, courses
// and curated roadmaps.
//
// A Catalog is built once from a Source and validated up front. Slugs must be
// unique per kind and well-formed, difficulties must be known, and every
// course and roadmap item must reference an existing category or course.
// An empty slug is derived from the name or title with slug.Make.
//
//	c, err := catalog.New(ctx, catalog.NewInMemSource(catalog.DefaultData()))
//	if err != nil {
//		return err
//	}
//	rm, err := c.FindRoadmapBySlug("frontend-roadmap")
//	if errors.Is(err, catalog.ErrRoadmapNotFound) {
//		// render 404
//	}
//
// Roadmap items are always returned sorted by Order. The sort is stable, so
// items sharing an Order keep the sequence they were stored in.
package catalog
