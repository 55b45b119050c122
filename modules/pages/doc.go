// Package pages serves the localized HTML site: home, course catalog,
// roadmaps and the Vibe Coding guide.
//
// Handle returns the router mounted under "/{locale}". It trusts the
// locale in the first path segment, so i18n.Middleware in front of it is
// only needed to redirect unprefixed paths. LocaleSwitch writes the
// locale cookie and sends the visitor to the same page in the new locale.
//
//	pagesModule, err := pages.New(pages.Options{
//		Catalog:    cat,
//		Guide:      g,
//		Dictionary: dict,
//		Resolver:   resolver,
//	})
//	r.Mount("/{locale}", pagesModule.Handle())
//	r.Mount("/_locale", pagesModule.LocaleSwitch())
//
// StaticRoutes lists every page the site can render without a query
// string. The static exporter walks it.
package pages
